package nodalbasis

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/notargets/nodalbasis/shapes"
	"github.com/notargets/nodalbasis/utils"
)

type entry struct {
	once sync.Once
	d    *Descriptor
	err  error
}

// Registry caches one descriptor per canonical tag. The first Get of a key
// builds it, concurrent Gets of the same key wait for that build.
type Registry struct {
	mu      sync.Mutex
	entries map[int]*entry
	builds  atomic.Int64
	build   func(shapes.Tag) (*Descriptor, error)
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[int]*entry), build: NewDescriptor}
}

var defaultRegistry = NewRegistry()

// Get looks tag up in the process wide registry
func Get(tag shapes.Tag) (*Descriptor, error) { return defaultRegistry.Get(tag) }

func (r *Registry) Get(tag shapes.Tag) (*Descriptor, error) {
	if err := tag.Validate(); err != nil {
		return nil, err
	}
	key := tag.Canonical().Encode()
	r.mu.Lock()
	e, ok := r.entries[key]
	if !ok {
		e = &entry{}
		r.entries[key] = e
	}
	r.mu.Unlock()
	e.once.Do(func() {
		r.builds.Add(1)
		defer func() {
			if rec := recover(); rec != nil {
				e.d, e.err = nil, fmt.Errorf("building %s: %v", tag, rec)
			}
		}()
		e.d, e.err = r.build(tag)
	})
	return e.d, e.err
}

// Warm builds tags on parallelDegree goroutines and joins the failures
func (r *Registry) Warm(tags []shapes.Tag, parallelDegree int) error {
	if len(tags) == 0 {
		return nil
	}
	var (
		pm   = utils.NewPartitionMap(parallelDegree, len(tags))
		errs = make([][]error, pm.ParallelDegree)
	)
	pm.Run(func(bn, kMin, kMax int) {
		for k := kMin; k < kMax; k++ {
			if _, err := r.Get(tags[k]); err != nil {
				errs[bn] = append(errs[bn], err)
			}
		}
	})
	var all []error
	for _, e := range errs {
		all = append(all, e...)
	}
	return errors.Join(all...)
}

// Len is the number of keys requested so far, failed builds included
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Builds counts descriptor constructions
func (r *Registry) Builds() int { return int(r.builds.Load()) }
