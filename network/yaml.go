package network

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed korea.yaml
var koreaYAML []byte

// Korea returns the built-in ten-city South Korean network.
// The embedded file is part of the build, so a decode failure is a programming error.
func Korea() Network {
	n, err := Unmarshal(koreaYAML)
	if err != nil {
		panic(fmt.Sprintf("network: embedded korea.yaml: %v", err))
	}

	return n
}

// Unmarshal decodes a YAML network document.
func Unmarshal(data []byte) (Network, error) {
	var n Network
	if err := yaml.Unmarshal(data, &n); err != nil {
		return Network{}, fmt.Errorf("network: decode yaml: %w", err)
	}

	return n, nil
}

// Decode reads one YAML network document from r. Unknown keys are rejected
// so that a misspelt "km" does not silently become a zero weight.
func Decode(r io.Reader) (Network, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var n Network
	if err := dec.Decode(&n); err != nil {
		if errors.Is(err, io.EOF) {
			return Network{}, ErrEmptyNetwork
		}
		return Network{}, fmt.Errorf("network: decode yaml: %w", err)
	}

	return n, nil
}

// Encode writes n as a YAML document.
func Encode(w io.Writer, n Network) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		return fmt.Errorf("network: encode yaml: %w", err)
	}

	return enc.Close()
}

// File is a Source backed by a YAML file on disk.
type File struct {
	Path string
}

// Load implements Source.
func (f File) Load(context.Context) (Network, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return Network{}, fmt.Errorf("network: %w", err)
	}
	defer fh.Close()

	return Decode(fh)
}
