package board

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/colonyops/taskboard/internal/core/storage"
	"github.com/colonyops/taskboard/internal/core/task"
)

// DefaultKey is the storage slot the task list is written under.
const DefaultKey = "tasks"

const schemaURL = "https://taskboard.local/schema/tasks.json"

//go:embed schema.json
var schemaJSON string

// Persistence reads and writes the whole task list as one JSON blob in a
// storage slot.
type Persistence struct {
	storage storage.Storage
	key     string
	schema  *jsonschema.Schema
}

// NewPersistence binds a storage backend to a slot key. An empty key uses
// DefaultKey.
func NewPersistence(s storage.Storage, key string) (*Persistence, error) {
	if key == "" {
		key = DefaultKey
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("add task schema: %w", err)
	}

	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile task schema: %w", err)
	}

	return &Persistence{storage: s, key: key, schema: schema}, nil
}

// Key returns the storage slot name.
func (p *Persistence) Key() string {
	return p.key
}

// Save replaces the persisted list with tasks.
func (p *Persistence) Save(ctx context.Context, tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}

	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}

	if err := p.storage.SetItem(ctx, p.key, string(data)); err != nil {
		return fmt.Errorf("write %q: %w", p.key, err)
	}

	return nil
}

// Load returns the persisted list. The boolean is false when nothing has been
// saved yet. Data that is not a well formed task list yields ErrCorrupt.
func (p *Persistence) Load(ctx context.Context) ([]task.Task, bool, error) {
	raw, ok, err := p.storage.GetItem(ctx, p.key)
	if err != nil {
		return nil, false, fmt.Errorf("read %q: %w", p.key, err)
	}
	if !ok {
		return nil, false, nil
	}

	tasks, err := p.Decode([]byte(raw))
	if err != nil {
		return nil, true, err
	}

	return tasks, true, nil
}

// Decode validates and parses a serialized task list.
func (p *Persistence) Decode(data []byte) ([]task.Task, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	if err := p.schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCorrupt, schemaMessage(err))
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	return tasks, nil
}

// schemaMessage flattens a validation error tree into "location: message"
// pairs for the leaf causes.
func schemaMessage(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}

	var msgs []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			loc := e.InstanceLocation
			if loc == "" {
				loc = "/"
			}
			msgs = append(msgs, loc+": "+e.Message)
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)

	return strings.Join(msgs, "; ")
}
