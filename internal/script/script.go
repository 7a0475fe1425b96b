// Package script replays a YAML list of add/update/delete steps against a store.
//
//	- op: add
//	  ref: milk
//	  title: Buy milk
//	  description: 2% milk
//	- op: update
//	  ref: milk
//	  title: Buy oat milk
//	  description: 2% milk
//	- op: delete
//	  ref: milk
//
// Ids are generated by the store, so an add step can bind a ref that later
// steps use instead of an id. Update and delete resolve ref first, then id.
package script

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/itemdeck/internal/model"
	"github.com/Makepad-fr/itemdeck/internal/store"
)

const (
	OpAdd    = "add"
	OpUpdate = "update"
	OpDelete = "delete"
)

var (
	ErrUnknownOp = errors.New("unknown op")
	ErrNoTarget  = errors.New("needs ref or id")
	ErrDupRef    = errors.New("ref already bound")
)

type Step struct {
	Op          string `yaml:"op"`
	Ref         string `yaml:"ref,omitempty"`
	ID          string `yaml:"id,omitempty"`
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`
}

func (s Step) draft() model.Draft {
	return model.Draft{Title: s.Title, Description: s.Description}.Normalize()
}

// StepError ties a failure to its 1-based position in the script.
type StepError struct {
	Index int
	Op    string
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Op, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Result counts what a replay did. Skipped steps targeted an unknown item.
type Result struct {
	Added, Updated, Deleted, Skipped int
}

// Parse decodes a script. An empty document is an empty script.
func Parse(r io.Reader) ([]Step, error) {
	var steps []Step
	if err := yaml.NewDecoder(r).Decode(&steps); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("yaml decode: %w", err)
	}
	return steps, nil
}

// Validate checks every step up front so a bad script leaves the store untouched.
func Validate(steps []Step) error {
	refs := make(map[string]bool)
	for i, st := range steps {
		var err error
		switch st.Op {
		case OpAdd:
			err = st.draft().Validate()
			if err == nil && st.Ref != "" {
				if refs[st.Ref] {
					err = fmt.Errorf("%w: %s", ErrDupRef, st.Ref)
				}
				refs[st.Ref] = true
			}
		case OpUpdate:
			if st.Ref == "" && st.ID == "" {
				err = ErrNoTarget
			} else {
				err = st.draft().Validate()
			}
		case OpDelete:
			if st.Ref == "" && st.ID == "" {
				err = ErrNoTarget
			}
		default:
			err = fmt.Errorf("%w %q", ErrUnknownOp, st.Op)
		}
		if err != nil {
			return &StepError{Index: i + 1, Op: st.Op, Err: err}
		}
	}
	return nil
}

// Apply validates the steps and then runs them in order against s.
func Apply(s *store.Store, steps []Step, log *zap.Logger) (Result, error) {
	var res Result
	if err := Validate(steps); err != nil {
		return res, err
	}
	refs := make(map[string]string)
	resolve := func(st Step) string {
		if id, ok := refs[st.Ref]; ok && st.Ref != "" {
			return id
		}
		return st.ID
	}

	for i, st := range steps {
		switch st.Op {
		case OpAdd:
			d := st.draft()
			it := s.Add(d.Title, d.Description)
			if st.Ref != "" {
				refs[st.Ref] = it.ID
			}
			res.Added++
		case OpUpdate:
			id := resolve(st)
			if _, ok := s.Get(id); !ok {
				res.Skipped++
				log.Info("update target not found", zap.Int("step", i+1), zap.String("ref", st.Ref), zap.String("id", id))
			} else {
				res.Updated++
			}
			d := st.draft()
			s.Update(id, d.Title, d.Description)
		case OpDelete:
			id := resolve(st)
			if _, ok := s.Get(id); !ok {
				res.Skipped++
				log.Info("delete target not found", zap.Int("step", i+1), zap.String("ref", st.Ref), zap.String("id", id))
			} else {
				res.Deleted++
			}
			s.Delete(id)
		}
	}
	log.Debug("script applied",
		zap.Int("steps", len(steps)),
		zap.Int("added", res.Added),
		zap.Int("updated", res.Updated),
		zap.Int("deleted", res.Deleted),
		zap.Int("skipped", res.Skipped))
	return res, nil
}
