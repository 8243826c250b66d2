package parse

import "github.com/opsel/opsel/format"

type parseState struct {
	format format.Format
}

type ParseOption func(*parseState)

func ParseFormat(f format.Format) ParseOption {
	return func(ps *parseState) { ps.format = f }
}

func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
