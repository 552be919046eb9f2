package tools

// Tool names
const (
	ToolEncodeBase64    = "encode_base64"
	ToolDecodeBase64    = "decode_base64"
	ToolSearchByStrings = "search_string_in_file_by_strings"
	ToolSearchByCode    = "search_string_in_file_by_code"
)

// Output formats accepted by the search tools
const (
	FormatText = "text"
	FormatJSON = "json"
)
