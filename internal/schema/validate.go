package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Compiled once per process; the documents are fixed at build time.
var (
	catalogSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
		return compile("catalog.json", Catalog())
	})
	receiptSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
		return compile("receipt.json", Receipt())
	})
)

// CheckCatalog validates a raw catalog document.
func CheckCatalog(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decode catalog: %w", err)
	}
	return check(catalogSchema, doc)
}

// CheckReceipt validates a decoded receipt value such as the result of
// structpb.Struct.AsMap.
func CheckReceipt(doc any) error {
	return check(receiptSchema, doc)
}

func check(load func() (*jsonschema.Schema, error), doc any) error {
	s, err := load()
	if err != nil {
		return err
	}
	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("%s: %w", s.Location, err)
	}
	return nil
}

func compile(name string, doc map[string]any) (*jsonschema.Schema, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", name, err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add %s: %w", name, err)
	}
	s, err := c.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}
	return s, nil
}
