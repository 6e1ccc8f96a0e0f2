package asset

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
)

// Extensions tried, in order, when an asset name has no extension.
var Extensions = []string{".gltf", ".glb"}

// FileSource loads assets from glTF files under Dir.
type FileSource struct {
	Dir string
}

// NewFileSource creates a FileSource rooted at dir.
func NewFileSource(dir string) *FileSource {
	return &FileSource{Dir: dir}
}

// Resolve maps an asset name to a file path. Names that already carry a
// glTF extension are used as given.
func (s *FileSource) Resolve(name string) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return filepath.Join(s.Dir, name), nil
		}
	}

	for _, e := range Extensions {
		path := filepath.Join(s.Dir, name+e)

		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("%w: no %s file for %q in %s",
		ErrSourceUnavailable, strings.Join(Extensions, " or "), name, s.Dir)
}

// Clips loads the asset and returns its animations in document order.
func (s *FileSource) Clips(name string) ([]Clip, error) {
	path, err := s.Resolve(name)
	if err != nil {
		return nil, err
	}

	return LoadFile(path)
}

// LoadFile reads a .gltf or .glb file and returns its animation clips.
// Only the JSON document is decoded; buffers, embedded or external, are
// never read.
func LoadFile(path string) ([]Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load %s: %w", ErrSourceUnavailable, path, err)
	}
	defer f.Close()

	doc, err := decodeDocument(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load %s: %w", ErrSourceUnavailable, path, err)
	}

	clips := make([]Clip, 0, len(doc.Animations))
	for i, anim := range doc.Animations {
		if anim == nil {
			continue
		}

		clips = append(clips, Clip{Index: i, Name: anim.Name})
	}

	return clips, nil
}

const (
	glbMagic     = 0x46546c67 // "glTF"
	glbChunkJSON = 0x4e4f534a // "JSON"
)

// glbHeader is the GLB file header plus the header of its first chunk.
type glbHeader struct {
	Magic      uint32
	Version    uint32
	Length     uint32
	JSONLength uint32
	JSONType   uint32
}

var errInvalidGLB = errors.New("invalid GLB JSON chunk")

// decodeDocument decodes the glTF JSON from r. A GLB stream is cut to its
// JSON chunk; the BIN chunk after it is left unread.
func decodeDocument(r *bufio.Reader) (*gltf.Document, error) {
	var body io.Reader = r

	var h glbHeader
	head, err := r.Peek(binary.Size(h))
	if err == nil && binary.LittleEndian.Uint32(head) == glbMagic {
		if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
			return nil, err
		}

		if h.JSONType != glbChunkJSON || h.JSONLength > h.Length {
			return nil, errInvalidGLB
		}

		body = io.LimitReader(r, int64(h.JSONLength))
	}

	doc := new(gltf.Document)
	if err := json.NewDecoder(body).Decode(doc); err != nil {
		return nil, err
	}

	return doc, nil
}
