package toolbox

import (
	"errors"
	"fmt"
)

// Tool identifies one of the toolbox utilities.
type Tool int

const (
	ToolURLEncoding Tool = iota
	ToolBase64
	ToolUUID
	ToolUnixTime
	ToolJSONFormat
	ToolSQLFormat
)

// Tools lists every tool in sidebar order.
var Tools = []Tool{
	ToolURLEncoding,
	ToolBase64,
	ToolUUID,
	ToolUnixTime,
	ToolJSONFormat,
	ToolSQLFormat,
}

var ErrUnknownTool = errors.New("unknown tool")

var toolNames = map[Tool]string{
	ToolURLEncoding: "url_encoding",
	ToolBase64:      "base64",
	ToolUUID:        "uuid",
	ToolUnixTime:    "unix_time",
	ToolJSONFormat:  "json_format",
	ToolSQLFormat:   "sql_format",
}

var toolTitles = map[Tool]string{
	ToolURLEncoding: "URL Encoding/Decoding",
	ToolBase64:      "Base64 Encoding/Decoding",
	ToolUUID:        "UUID Generator",
	ToolUnixTime:    "Unix Time Converter",
	ToolJSONFormat:  "Json Formatter",
	ToolSQLFormat:   "SQL Formatter",
}

// Name is the stable identifier used in snapshots and on the command line.
func (t Tool) Name() string {
	if name, ok := toolNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tool(%d)", int(t))
}

// Title is the label shown in the sidebar and as the panel heading.
func (t Tool) Title() string {
	if title, ok := toolTitles[t]; ok {
		return title
	}
	return t.Name()
}

func (t Tool) String() string {
	return t.Name()
}

// HasDirection reports whether the tool distinguishes encode from decode.
func (t Tool) HasDirection() bool {
	return t == ToolURLEncoding || t == ToolBase64
}

// ParseTool resolves a tool by its Name.
func ParseTool(name string) (Tool, error) {
	for tool, n := range toolNames {
		if n == name {
			return tool, nil
		}
	}
	return ToolURLEncoding, fmt.Errorf("%w: %q", ErrUnknownTool, name)
}

// Direction selects encoding or decoding for the codec tools.
type Direction int

const (
	DirectionEncode Direction = iota
	DirectionDecode
)

var ErrUnknownDirection = errors.New("unknown direction")

func (d Direction) Name() string {
	switch d {
	case DirectionEncode:
		return "encode"
	case DirectionDecode:
		return "decode"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

func (d Direction) Title() string {
	switch d {
	case DirectionEncode:
		return "Encode"
	case DirectionDecode:
		return "Decode"
	}
	return d.Name()
}

func (d Direction) String() string {
	return d.Name()
}

// ParseDirection resolves a direction by its Name.
func ParseDirection(name string) (Direction, error) {
	switch name {
	case "encode":
		return DirectionEncode, nil
	case "decode":
		return DirectionDecode, nil
	}
	return DirectionEncode, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
}
