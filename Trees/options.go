package Trees

import (
	"fmt"
	"log"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// ErrAllocFailed is reported when a node couldn't be allocated. Whatever
// operation hit it leaves the tree it was changing as it was before the call.
var ErrAllocFailed = errors.New("Trees: node allocation failed")

// Logger receives trace messages about tree operations.
type Logger interface {
	Infof(format string, args ...interface{})
}

// DefaultLogger logs to the Go stdlib logs.
type DefaultLogger struct{}

// Infof implements the Logger.Infof interface.
func (DefaultLogger) Infof(format string, args ...interface{}) {
	_ = log.Output(2, fmt.Sprintf(format, args...))
}

// Allocator is consulted before every node allocation. A non-nil return
// cancels the allocation and is reported by the operation that needed it.
type Allocator func() error

// Quota returns an Allocator permitting n allocations. Every later one fails
// with an error wrapping ErrAllocFailed. The returned Allocator isn't safe for
// concurrent use.
func Quota(n uint) Allocator {
	used := uint(0)
	return func() error {
		if used == n {
			return errors.Wrapf(ErrAllocFailed, "quota of %d nodes exhausted", redact.Safe(n))
		}
		used++
		return nil
	}
}

type options struct {
	logger Logger
	alloc  Allocator
}

// Option configures a BST at construction. Trees produced from another tree
// (Clone, Subtree) take their own options and keep only the source's logger.
type Option func(*options)

// WithLogger traces tree operations to l. The default is not to log.
func WithLogger(l Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithAllocator makes the tree consult a before allocating nodes. An Allocator
// is stateful, so give each tree its own.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		o.alloc = a
	}
}

func makeOptions(opts []Option) (o options) {
	for _, opt := range opts {
		opt(&o)
	}
	return
}

func (o *options) infof(format string, args ...interface{}) {
	if o.logger != nil {
		o.logger.Infof(format, args...)
	}
}

func (o *options) allocate() error {
	if o.alloc != nil {
		return o.alloc()
	}
	return nil
}
