package binding

import (
	"reflect"
	"slices"
	"sync"

	"model-binder/core/convert"
	"model-binder/core/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Result is what a Resolver produces for one bind.
type Result struct {
	Value    any
	Problems []Problem
}

// Resolver instantiates and populates a value of type t from ctx.
// Bind is synchronous.
type Resolver interface {
	Bind(ctx *Context, t reflect.Type) Result
}

// ResolverFunc adapts a function to a Resolver.
type ResolverFunc func(ctx *Context, t reflect.Type) Result

// Bind implements Resolver.
func (f ResolverFunc) Bind(ctx *Context, t reflect.Type) Result {
	return f(ctx, t)
}

// Option configures a Context.
type Option func(*options)

type options struct {
	naming    *Naming
	converter convert.Converter
	resolver  Resolver
	locator   Locator
}

// WithNaming sets the naming chain. Defaults to DefaultNaming.
func WithNaming(naming Naming) Option {
	return func(o *options) { o.naming = &naming }
}

// WithConverter sets the converter.
func WithConverter(converter convert.Converter) Option {
	return func(o *options) { o.converter = converter }
}

// WithResolver sets the resolver used for nested binds.
func WithResolver(resolver Resolver) Option {
	return func(o *options) { o.resolver = resolver }
}

// WithLocator sets the service locator. It also supplies the converter and
// resolver when those are not given explicitly.
func WithLocator(locator Locator) Option {
	return func(o *options) { o.locator = locator }
}

// Context orchestrates one bind: it owns the input, the problem list and
// the object scope stack. A Context is not safe for concurrent use.
type Context struct {
	id        string
	data      request.Data
	logger    *zap.Logger
	locator   Locator
	naming    Naming
	converter convert.Converter
	resolver  Resolver

	problems []Problem
	objects  []any
	values   func() *Values
}

// New creates a Context over data. logger is required.
func New(data request.Data, logger *zap.Logger, opts ...Option) (*Context, error) {
	if logger == nil {
		return nil, NewNilLoggerError()
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	naming := DefaultNaming()
	if o.naming != nil {
		naming = *o.naming
	}

	converter := o.converter
	if converter == nil {
		if located, ok := locate[convert.Converter](o.locator); ok {
			converter = located
		} else {
			converter = convert.New()
		}
	}

	resolver := o.resolver
	if resolver == nil {
		if located, ok := locate[Resolver](o.locator); ok {
			resolver = located
		} else {
			resolver = NewObjectResolver()
		}
	}

	if data == nil {
		data = request.NewMapData("empty", nil)
	}

	c := &Context{
		data:      data,
		logger:    logger,
		locator:   o.locator,
		naming:    naming,
		converter: converter,
		resolver:  resolver,
	}
	c.init()
	return c, nil
}

// child creates a context over data sharing every collaborator with c.
func (c *Context) child(data request.Data) *Context {
	child := &Context{
		data:      data,
		logger:    c.logger,
		locator:   c.locator,
		naming:    c.naming,
		converter: c.converter,
		resolver:  c.resolver,
	}
	child.init()
	return child
}

func (c *Context) init() {
	c.id = uuid.NewString()
	c.values = sync.OnceValue(func() *Values {
		return NewValues(c.data, c.naming, c.converter)
	})
}

// ID identifies this context in logs.
func (c *Context) ID() string {
	return c.id
}

// Data returns the input this context binds from.
func (c *Context) Data() request.Data {
	return c.data
}

// Logger returns the logger supplied at construction.
func (c *Context) Logger() *zap.Logger {
	return c.logger
}

// Naming returns the effective naming chain.
func (c *Context) Naming() Naming {
	return c.naming
}

// Converter returns the effective converter.
func (c *Context) Converter() convert.Converter {
	return c.converter
}

// Values returns the lazily built value lookup. It is built once.
func (c *Context) Values() *Values {
	return c.values()
}

// Service resolves a service through the locator.
func (c *Context) Service(t reflect.Type) (any, bool) {
	if c.locator == nil {
		return nil, false
	}
	return c.locator.Resolve(t)
}

// Problems returns a copy of the problems recorded so far, in order.
func (c *Context) Problems() []Problem {
	return slices.Clone(c.problems)
}

// Object returns the object currently being populated, or nil.
func (c *Context) Object() any {
	if len(c.objects) == 0 {
		return nil
	}
	return c.objects[len(c.objects)-1]
}

// ForObject makes obj the current object while action runs. The scope is
// released on every exit, including a panic inside action.
func (c *Context) ForObject(obj any, action func() error) error {
	c.objects = append(c.objects, obj)
	defer func() {
		c.objects = c.objects[:len(c.objects)-1]
	}()
	return action()
}

// ForProperty runs action for prop. An error returned by action, or a
// panic inside it, is recorded as a Problem and never escapes.
func (c *Context) ForProperty(prop Property, action func(*PropertyContext) error) {
	err := runProperty(&PropertyContext{ctx: c, prop: prop}, action)
	if err == nil {
		return
	}
	c.LogProblem(err, c.lookupQuietly(prop.Name), &prop)
}

func runProperty(pc *PropertyContext, action func(*PropertyContext) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewPanicError(r)
		}
	}()
	return action(pc)
}

// lookupQuietly re-reads the raw value for a failed property. Any failure
// here yields nil.
func (c *Context) lookupQuietly(name string) (value *request.BindingValue) {
	defer func() {
		if recover() != nil {
			value = nil
		}
	}()
	if v, ok := c.Values().Lookup(name); ok {
		return &v
	}
	return nil
}

// BindObject binds t from data in a child context, merges the child's
// problems and hands the value to continuation, synchronously and once.
func (c *Context) BindObject(data request.Data, t reflect.Type, continuation func(any)) {
	result := c.resolver.Bind(c.child(data), t)
	c.problems = append(c.problems, result.Problems...)
	continuation(result.Value)
}

// BindPrefixed binds t from the input scoped to prefix. When no key starts
// with prefix it returns nil without invoking the resolver.
func (c *Context) BindPrefixed(prefix string, t reflect.Type) any {
	if !c.data.HasAnyValuePrefixedWith(prefix) {
		return nil
	}
	result := c.resolver.Bind(c.child(c.data.SubRequest(prefix)), t)
	c.problems = append(c.problems, result.Problems...)
	c.logger.Debug("bound prefixed object",
		zap.String("bind_id", c.id),
		zap.String("prefix", prefix),
		zap.String("type", t.String()),
		zap.Int("problems", len(result.Problems)),
	)
	return result.Value
}

// LogProblem records err against the current object.
func (c *Context) LogProblem(err error, value *request.BindingValue, prop *Property) {
	c.LogProblemText(faultText(err), value, prop)
}

// LogProblemText records a pre-composed message against the current object.
func (c *Context) LogProblemText(text string, value *request.BindingValue, prop *Property) {
	problem := Problem{
		ExceptionText: text,
		Item:          c.Object(),
		Property:      prop,
		Value:         value,
	}
	c.problems = append(c.problems, problem)

	fields := []zap.Field{
		zap.String("bind_id", c.id),
		zap.String("problem", text),
	}
	if prop != nil {
		fields = append(fields, zap.String("property", prop.Name))
	}
	if value != nil {
		fields = append(fields, zap.String("key", value.RawKey), zap.String("source", value.Source))
	}
	c.logger.Debug("binding problem", fields...)
}
