package obj

import (
	"fmt"
	"strings"
)

// Element identifies the kind of record a line holds.
type Element int

// Element kinds.
const (
	ElementOther    Element = iota // Comments and unsupported directives
	ElementVertex                  // v x y z
	ElementTexCoord                // vt u v
	ElementNormal                  // vn x y z
	ElementFace                    // f v[/vt[/vn]] ...
	ElementGroup                   // g name...
)

// String returns the directive keyword for the element.
func (e Element) String() string {
	switch e {
	case ElementOther:
		return "other"
	case ElementVertex:
		return "v"
	case ElementTexCoord:
		return "vt"
	case ElementNormal:
		return "vn"
	case ElementFace:
		return "f"
	case ElementGroup:
		return "g"
	default:
		return fmt.Sprintf("Unknown(%d)", int(e))
	}
}

// Classify maps the leading token of a line to an element by prefix.
// Order matters: "vt" and "vn" are checked before "v".
//
// Any token sharing a prefix is caught too, so "vp" reads as a vertex.
// Deprecated behaviour kept for compatibility; see ClassifyExact.
func Classify(token string) Element {
	switch {
	case strings.HasPrefix(token, "vt"):
		return ElementTexCoord
	case strings.HasPrefix(token, "vn"):
		return ElementNormal
	case strings.HasPrefix(token, "v"):
		return ElementVertex
	case strings.HasPrefix(token, "f"):
		return ElementFace
	case strings.HasPrefix(token, "g"):
		return ElementGroup
	default:
		return ElementOther
	}
}

// ClassifyExact maps the leading token of a line to an element only when
// it is exactly one of the supported keywords.
func ClassifyExact(token string) Element {
	switch token {
	case "v":
		return ElementVertex
	case "vt":
		return ElementTexCoord
	case "vn":
		return ElementNormal
	case "f":
		return ElementFace
	case "g":
		return ElementGroup
	default:
		return ElementOther
	}
}
