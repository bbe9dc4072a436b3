package xps

import (
	"errors"
	"fmt"
)

// Decode errors. All are terminal.
var (
	ErrFileNotLoaded   = errors.New("unsupported model file extension")
	ErrStreamNotOpened = errors.New("model stream could not be opened")
	ErrInvalidHeader   = fmt.Errorf("invalid XPS header: expected magic %d", MagicNumber)
	ErrPathGetParent   = errors.New("texture path has no parent component")
	ErrPathToStr       = errors.New("texture parent path is not valid text")
	ErrMeshReadASCII   = errors.New("reading ascii meshes")
	ErrMeshReadBin     = errors.New("reading binary meshes")
)

// ErrorKind classifies a decode outcome.
type ErrorKind uint8

const (
	KindUnknown ErrorKind = iota
	KindStreamNotOpened
	KindInvalidHeader
	KindFileNotLoaded
	KindPathGetParent
	KindPathToStr
	KindMeshReadASCII
	KindMeshReadBin
	KindNone
)

// String returns the kind's name.
func (k ErrorKind) String() string {
	switch k {
	case KindUnknown:
		return "Unknown"
	case KindStreamNotOpened:
		return "StreamNotOpened"
	case KindInvalidHeader:
		return "InvalidHeader"
	case KindFileNotLoaded:
		return "FileNotLoaded"
	case KindPathGetParent:
		return "PathGetParent"
	case KindPathToStr:
		return "PathToStr"
	case KindMeshReadASCII:
		return "MeshReadAscii"
	case KindMeshReadBin:
		return "MeshReadBin"
	case KindNone:
		return "None"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// Mesh read errors come first so a path failure inside mesh reading reports
// the mesh section that failed.
var kindOrder = []struct {
	err  error
	kind ErrorKind
}{
	{ErrMeshReadASCII, KindMeshReadASCII},
	{ErrMeshReadBin, KindMeshReadBin},
	{ErrFileNotLoaded, KindFileNotLoaded},
	{ErrStreamNotOpened, KindStreamNotOpened},
	{ErrInvalidHeader, KindInvalidHeader},
	{ErrPathGetParent, KindPathGetParent},
	{ErrPathToStr, KindPathToStr},
}

// KindOf maps an error returned by this package to its kind.
// A nil error is KindNone; foreign errors are KindUnknown.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	for _, k := range kindOrder {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindUnknown
}
