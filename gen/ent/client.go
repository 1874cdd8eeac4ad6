// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/biomarkerlab/labreports/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/biomarkerlab/labreports/gen/ent/biomarkerstandard"
	"github.com/biomarkerlab/labreports/gen/ent/labjob"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// BiomarkerStandard is the client for interacting with the BiomarkerStandard builders.
	BiomarkerStandard *BiomarkerStandardClient
	// LabJob is the client for interacting with the LabJob builders.
	LabJob *LabJobClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.BiomarkerStandard = NewBiomarkerStandardClient(c.config)
	c.LabJob = NewLabJobClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		BiomarkerStandard: NewBiomarkerStandardClient(cfg),
		LabJob:            NewLabJobClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		BiomarkerStandard: NewBiomarkerStandardClient(cfg),
		LabJob:            NewLabJobClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		BiomarkerStandard.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.BiomarkerStandard.Use(hooks...)
	c.LabJob.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.BiomarkerStandard.Intercept(interceptors...)
	c.LabJob.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BiomarkerStandardMutation:
		return c.BiomarkerStandard.mutate(ctx, m)
	case *LabJobMutation:
		return c.LabJob.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BiomarkerStandardClient is a client for the BiomarkerStandard schema.
type BiomarkerStandardClient struct {
	config
}

// NewBiomarkerStandardClient returns a client for the BiomarkerStandard from the given config.
func NewBiomarkerStandardClient(c config) *BiomarkerStandardClient {
	return &BiomarkerStandardClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `biomarkerstandard.Hooks(f(g(h())))`.
func (c *BiomarkerStandardClient) Use(hooks ...Hook) {
	c.hooks.BiomarkerStandard = append(c.hooks.BiomarkerStandard, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `biomarkerstandard.Intercept(f(g(h())))`.
func (c *BiomarkerStandardClient) Intercept(interceptors ...Interceptor) {
	c.inters.BiomarkerStandard = append(c.inters.BiomarkerStandard, interceptors...)
}

// Create returns a builder for creating a BiomarkerStandard entity.
func (c *BiomarkerStandardClient) Create() *BiomarkerStandardCreate {
	mutation := newBiomarkerStandardMutation(c.config, OpCreate)
	return &BiomarkerStandardCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BiomarkerStandard entities.
func (c *BiomarkerStandardClient) CreateBulk(builders ...*BiomarkerStandardCreate) *BiomarkerStandardCreateBulk {
	return &BiomarkerStandardCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BiomarkerStandardClient) MapCreateBulk(slice any, setFunc func(*BiomarkerStandardCreate, int)) *BiomarkerStandardCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BiomarkerStandardCreateBulk{err: fmt.Errorf("calling to BiomarkerStandardClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BiomarkerStandardCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BiomarkerStandardCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BiomarkerStandard.
func (c *BiomarkerStandardClient) Update() *BiomarkerStandardUpdate {
	mutation := newBiomarkerStandardMutation(c.config, OpUpdate)
	return &BiomarkerStandardUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BiomarkerStandardClient) UpdateOne(_m *BiomarkerStandard) *BiomarkerStandardUpdateOne {
	mutation := newBiomarkerStandardMutation(c.config, OpUpdateOne, withBiomarkerStandard(_m))
	return &BiomarkerStandardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BiomarkerStandardClient) UpdateOneID(id uuid.UUID) *BiomarkerStandardUpdateOne {
	mutation := newBiomarkerStandardMutation(c.config, OpUpdateOne, withBiomarkerStandardID(id))
	return &BiomarkerStandardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BiomarkerStandard.
func (c *BiomarkerStandardClient) Delete() *BiomarkerStandardDelete {
	mutation := newBiomarkerStandardMutation(c.config, OpDelete)
	return &BiomarkerStandardDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BiomarkerStandardClient) DeleteOne(_m *BiomarkerStandard) *BiomarkerStandardDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BiomarkerStandardClient) DeleteOneID(id uuid.UUID) *BiomarkerStandardDeleteOne {
	builder := c.Delete().Where(biomarkerstandard.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BiomarkerStandardDeleteOne{builder}
}

// Query returns a query builder for BiomarkerStandard.
func (c *BiomarkerStandardClient) Query() *BiomarkerStandardQuery {
	return &BiomarkerStandardQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBiomarkerStandard},
		inters: c.Interceptors(),
	}
}

// Get returns a BiomarkerStandard entity by its id.
func (c *BiomarkerStandardClient) Get(ctx context.Context, id uuid.UUID) (*BiomarkerStandard, error) {
	return c.Query().Where(biomarkerstandard.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BiomarkerStandardClient) GetX(ctx context.Context, id uuid.UUID) *BiomarkerStandard {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BiomarkerStandardClient) Hooks() []Hook {
	return c.hooks.BiomarkerStandard
}

// Interceptors returns the client interceptors.
func (c *BiomarkerStandardClient) Interceptors() []Interceptor {
	return c.inters.BiomarkerStandard
}

func (c *BiomarkerStandardClient) mutate(ctx context.Context, m *BiomarkerStandardMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BiomarkerStandardCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BiomarkerStandardUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BiomarkerStandardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BiomarkerStandardDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BiomarkerStandard mutation op: %q", m.Op())
	}
}

// LabJobClient is a client for the LabJob schema.
type LabJobClient struct {
	config
}

// NewLabJobClient returns a client for the LabJob from the given config.
func NewLabJobClient(c config) *LabJobClient {
	return &LabJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `labjob.Hooks(f(g(h())))`.
func (c *LabJobClient) Use(hooks ...Hook) {
	c.hooks.LabJob = append(c.hooks.LabJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `labjob.Intercept(f(g(h())))`.
func (c *LabJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.LabJob = append(c.inters.LabJob, interceptors...)
}

// Create returns a builder for creating a LabJob entity.
func (c *LabJobClient) Create() *LabJobCreate {
	mutation := newLabJobMutation(c.config, OpCreate)
	return &LabJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LabJob entities.
func (c *LabJobClient) CreateBulk(builders ...*LabJobCreate) *LabJobCreateBulk {
	return &LabJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LabJobClient) MapCreateBulk(slice any, setFunc func(*LabJobCreate, int)) *LabJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LabJobCreateBulk{err: fmt.Errorf("calling to LabJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LabJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LabJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LabJob.
func (c *LabJobClient) Update() *LabJobUpdate {
	mutation := newLabJobMutation(c.config, OpUpdate)
	return &LabJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LabJobClient) UpdateOne(_m *LabJob) *LabJobUpdateOne {
	mutation := newLabJobMutation(c.config, OpUpdateOne, withLabJob(_m))
	return &LabJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LabJobClient) UpdateOneID(id uuid.UUID) *LabJobUpdateOne {
	mutation := newLabJobMutation(c.config, OpUpdateOne, withLabJobID(id))
	return &LabJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LabJob.
func (c *LabJobClient) Delete() *LabJobDelete {
	mutation := newLabJobMutation(c.config, OpDelete)
	return &LabJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LabJobClient) DeleteOne(_m *LabJob) *LabJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LabJobClient) DeleteOneID(id uuid.UUID) *LabJobDeleteOne {
	builder := c.Delete().Where(labjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LabJobDeleteOne{builder}
}

// Query returns a query builder for LabJob.
func (c *LabJobClient) Query() *LabJobQuery {
	return &LabJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLabJob},
		inters: c.Interceptors(),
	}
}

// Get returns a LabJob entity by its id.
func (c *LabJobClient) Get(ctx context.Context, id uuid.UUID) (*LabJob, error) {
	return c.Query().Where(labjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LabJobClient) GetX(ctx context.Context, id uuid.UUID) *LabJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LabJobClient) Hooks() []Hook {
	return c.hooks.LabJob
}

// Interceptors returns the client interceptors.
func (c *LabJobClient) Interceptors() []Interceptor {
	return c.inters.LabJob
}

func (c *LabJobClient) mutate(ctx context.Context, m *LabJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LabJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LabJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LabJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LabJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LabJob mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		BiomarkerStandard, LabJob []ent.Hook
	}
	inters struct {
		BiomarkerStandard, LabJob []ent.Interceptor
	}
)
