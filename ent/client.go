// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/N1KH1LT0X1N/StudyFlux/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/flashcard"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/learnerprofile"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/pointsentry"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/unlockedachievement"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Flashcard is the client for interacting with the Flashcard builders.
	Flashcard *FlashcardClient
	// LearnerProfile is the client for interacting with the LearnerProfile builders.
	LearnerProfile *LearnerProfileClient
	// PointsEntry is the client for interacting with the PointsEntry builders.
	PointsEntry *PointsEntryClient
	// UnlockedAchievement is the client for interacting with the UnlockedAchievement builders.
	UnlockedAchievement *UnlockedAchievementClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Flashcard = NewFlashcardClient(c.config)
	c.LearnerProfile = NewLearnerProfileClient(c.config)
	c.PointsEntry = NewPointsEntryClient(c.config)
	c.UnlockedAchievement = NewUnlockedAchievementClient(c.config)
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
		ctx:                 ctx,
		config:              cfg,
		Flashcard:           NewFlashcardClient(cfg),
		LearnerProfile:      NewLearnerProfileClient(cfg),
		PointsEntry:         NewPointsEntryClient(cfg),
		UnlockedAchievement: NewUnlockedAchievementClient(cfg),
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
		ctx:                 ctx,
		config:              cfg,
		Flashcard:           NewFlashcardClient(cfg),
		LearnerProfile:      NewLearnerProfileClient(cfg),
		PointsEntry:         NewPointsEntryClient(cfg),
		UnlockedAchievement: NewUnlockedAchievementClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Flashcard.
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
	c.Flashcard.Use(hooks...)
	c.LearnerProfile.Use(hooks...)
	c.PointsEntry.Use(hooks...)
	c.UnlockedAchievement.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Flashcard.Intercept(interceptors...)
	c.LearnerProfile.Intercept(interceptors...)
	c.PointsEntry.Intercept(interceptors...)
	c.UnlockedAchievement.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *FlashcardMutation:
		return c.Flashcard.mutate(ctx, m)
	case *LearnerProfileMutation:
		return c.LearnerProfile.mutate(ctx, m)
	case *PointsEntryMutation:
		return c.PointsEntry.mutate(ctx, m)
	case *UnlockedAchievementMutation:
		return c.UnlockedAchievement.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// FlashcardClient is a client for the Flashcard schema.
type FlashcardClient struct {
	config
}

// NewFlashcardClient returns a client for the Flashcard from the given config.
func NewFlashcardClient(c config) *FlashcardClient {
	return &FlashcardClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `flashcard.Hooks(f(g(h())))`.
func (c *FlashcardClient) Use(hooks ...Hook) {
	c.hooks.Flashcard = append(c.hooks.Flashcard, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `flashcard.Intercept(f(g(h())))`.
func (c *FlashcardClient) Intercept(interceptors ...Interceptor) {
	c.inters.Flashcard = append(c.inters.Flashcard, interceptors...)
}

// Create returns a builder for creating a Flashcard entity.
func (c *FlashcardClient) Create() *FlashcardCreate {
	mutation := newFlashcardMutation(c.config, OpCreate)
	return &FlashcardCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Flashcard entities.
func (c *FlashcardClient) CreateBulk(builders ...*FlashcardCreate) *FlashcardCreateBulk {
	return &FlashcardCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FlashcardClient) MapCreateBulk(slice any, setFunc func(*FlashcardCreate, int)) *FlashcardCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FlashcardCreateBulk{err: fmt.Errorf("calling to FlashcardClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FlashcardCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FlashcardCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Flashcard.
func (c *FlashcardClient) Update() *FlashcardUpdate {
	mutation := newFlashcardMutation(c.config, OpUpdate)
	return &FlashcardUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FlashcardClient) UpdateOne(_m *Flashcard) *FlashcardUpdateOne {
	mutation := newFlashcardMutation(c.config, OpUpdateOne, withFlashcard(_m))
	return &FlashcardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FlashcardClient) UpdateOneID(id string) *FlashcardUpdateOne {
	mutation := newFlashcardMutation(c.config, OpUpdateOne, withFlashcardID(id))
	return &FlashcardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Flashcard.
func (c *FlashcardClient) Delete() *FlashcardDelete {
	mutation := newFlashcardMutation(c.config, OpDelete)
	return &FlashcardDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FlashcardClient) DeleteOne(_m *Flashcard) *FlashcardDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FlashcardClient) DeleteOneID(id string) *FlashcardDeleteOne {
	builder := c.Delete().Where(flashcard.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FlashcardDeleteOne{builder}
}

// Query returns a query builder for Flashcard.
func (c *FlashcardClient) Query() *FlashcardQuery {
	return &FlashcardQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFlashcard},
		inters: c.Interceptors(),
	}
}

// Get returns a Flashcard entity by its id.
func (c *FlashcardClient) Get(ctx context.Context, id string) (*Flashcard, error) {
	return c.Query().Where(flashcard.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FlashcardClient) GetX(ctx context.Context, id string) *Flashcard {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FlashcardClient) Hooks() []Hook {
	return c.hooks.Flashcard
}

// Interceptors returns the client interceptors.
func (c *FlashcardClient) Interceptors() []Interceptor {
	return c.inters.Flashcard
}

func (c *FlashcardClient) mutate(ctx context.Context, m *FlashcardMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FlashcardCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FlashcardUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FlashcardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FlashcardDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Flashcard mutation op: %q", m.Op())
	}
}

// LearnerProfileClient is a client for the LearnerProfile schema.
type LearnerProfileClient struct {
	config
}

// NewLearnerProfileClient returns a client for the LearnerProfile from the given config.
func NewLearnerProfileClient(c config) *LearnerProfileClient {
	return &LearnerProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learnerprofile.Hooks(f(g(h())))`.
func (c *LearnerProfileClient) Use(hooks ...Hook) {
	c.hooks.LearnerProfile = append(c.hooks.LearnerProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learnerprofile.Intercept(f(g(h())))`.
func (c *LearnerProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.LearnerProfile = append(c.inters.LearnerProfile, interceptors...)
}

// Create returns a builder for creating a LearnerProfile entity.
func (c *LearnerProfileClient) Create() *LearnerProfileCreate {
	mutation := newLearnerProfileMutation(c.config, OpCreate)
	return &LearnerProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LearnerProfile entities.
func (c *LearnerProfileClient) CreateBulk(builders ...*LearnerProfileCreate) *LearnerProfileCreateBulk {
	return &LearnerProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearnerProfileClient) MapCreateBulk(slice any, setFunc func(*LearnerProfileCreate, int)) *LearnerProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearnerProfileCreateBulk{err: fmt.Errorf("calling to LearnerProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearnerProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearnerProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LearnerProfile.
func (c *LearnerProfileClient) Update() *LearnerProfileUpdate {
	mutation := newLearnerProfileMutation(c.config, OpUpdate)
	return &LearnerProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearnerProfileClient) UpdateOne(_m *LearnerProfile) *LearnerProfileUpdateOne {
	mutation := newLearnerProfileMutation(c.config, OpUpdateOne, withLearnerProfile(_m))
	return &LearnerProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearnerProfileClient) UpdateOneID(id string) *LearnerProfileUpdateOne {
	mutation := newLearnerProfileMutation(c.config, OpUpdateOne, withLearnerProfileID(id))
	return &LearnerProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LearnerProfile.
func (c *LearnerProfileClient) Delete() *LearnerProfileDelete {
	mutation := newLearnerProfileMutation(c.config, OpDelete)
	return &LearnerProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearnerProfileClient) DeleteOne(_m *LearnerProfile) *LearnerProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearnerProfileClient) DeleteOneID(id string) *LearnerProfileDeleteOne {
	builder := c.Delete().Where(learnerprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearnerProfileDeleteOne{builder}
}

// Query returns a query builder for LearnerProfile.
func (c *LearnerProfileClient) Query() *LearnerProfileQuery {
	return &LearnerProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearnerProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a LearnerProfile entity by its id.
func (c *LearnerProfileClient) Get(ctx context.Context, id string) (*LearnerProfile, error) {
	return c.Query().Where(learnerprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearnerProfileClient) GetX(ctx context.Context, id string) *LearnerProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearnerProfileClient) Hooks() []Hook {
	return c.hooks.LearnerProfile
}

// Interceptors returns the client interceptors.
func (c *LearnerProfileClient) Interceptors() []Interceptor {
	return c.inters.LearnerProfile
}

func (c *LearnerProfileClient) mutate(ctx context.Context, m *LearnerProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearnerProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearnerProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearnerProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearnerProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LearnerProfile mutation op: %q", m.Op())
	}
}

// PointsEntryClient is a client for the PointsEntry schema.
type PointsEntryClient struct {
	config
}

// NewPointsEntryClient returns a client for the PointsEntry from the given config.
func NewPointsEntryClient(c config) *PointsEntryClient {
	return &PointsEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pointsentry.Hooks(f(g(h())))`.
func (c *PointsEntryClient) Use(hooks ...Hook) {
	c.hooks.PointsEntry = append(c.hooks.PointsEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pointsentry.Intercept(f(g(h())))`.
func (c *PointsEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.PointsEntry = append(c.inters.PointsEntry, interceptors...)
}

// Create returns a builder for creating a PointsEntry entity.
func (c *PointsEntryClient) Create() *PointsEntryCreate {
	mutation := newPointsEntryMutation(c.config, OpCreate)
	return &PointsEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PointsEntry entities.
func (c *PointsEntryClient) CreateBulk(builders ...*PointsEntryCreate) *PointsEntryCreateBulk {
	return &PointsEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PointsEntryClient) MapCreateBulk(slice any, setFunc func(*PointsEntryCreate, int)) *PointsEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PointsEntryCreateBulk{err: fmt.Errorf("calling to PointsEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PointsEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PointsEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PointsEntry.
func (c *PointsEntryClient) Update() *PointsEntryUpdate {
	mutation := newPointsEntryMutation(c.config, OpUpdate)
	return &PointsEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PointsEntryClient) UpdateOne(_m *PointsEntry) *PointsEntryUpdateOne {
	mutation := newPointsEntryMutation(c.config, OpUpdateOne, withPointsEntry(_m))
	return &PointsEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PointsEntryClient) UpdateOneID(id int) *PointsEntryUpdateOne {
	mutation := newPointsEntryMutation(c.config, OpUpdateOne, withPointsEntryID(id))
	return &PointsEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PointsEntry.
func (c *PointsEntryClient) Delete() *PointsEntryDelete {
	mutation := newPointsEntryMutation(c.config, OpDelete)
	return &PointsEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PointsEntryClient) DeleteOne(_m *PointsEntry) *PointsEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PointsEntryClient) DeleteOneID(id int) *PointsEntryDeleteOne {
	builder := c.Delete().Where(pointsentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PointsEntryDeleteOne{builder}
}

// Query returns a query builder for PointsEntry.
func (c *PointsEntryClient) Query() *PointsEntryQuery {
	return &PointsEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePointsEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a PointsEntry entity by its id.
func (c *PointsEntryClient) Get(ctx context.Context, id int) (*PointsEntry, error) {
	return c.Query().Where(pointsentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PointsEntryClient) GetX(ctx context.Context, id int) *PointsEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PointsEntryClient) Hooks() []Hook {
	return c.hooks.PointsEntry
}

// Interceptors returns the client interceptors.
func (c *PointsEntryClient) Interceptors() []Interceptor {
	return c.inters.PointsEntry
}

func (c *PointsEntryClient) mutate(ctx context.Context, m *PointsEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PointsEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PointsEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PointsEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PointsEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PointsEntry mutation op: %q", m.Op())
	}
}

// UnlockedAchievementClient is a client for the UnlockedAchievement schema.
type UnlockedAchievementClient struct {
	config
}

// NewUnlockedAchievementClient returns a client for the UnlockedAchievement from the given config.
func NewUnlockedAchievementClient(c config) *UnlockedAchievementClient {
	return &UnlockedAchievementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `unlockedachievement.Hooks(f(g(h())))`.
func (c *UnlockedAchievementClient) Use(hooks ...Hook) {
	c.hooks.UnlockedAchievement = append(c.hooks.UnlockedAchievement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `unlockedachievement.Intercept(f(g(h())))`.
func (c *UnlockedAchievementClient) Intercept(interceptors ...Interceptor) {
	c.inters.UnlockedAchievement = append(c.inters.UnlockedAchievement, interceptors...)
}

// Create returns a builder for creating a UnlockedAchievement entity.
func (c *UnlockedAchievementClient) Create() *UnlockedAchievementCreate {
	mutation := newUnlockedAchievementMutation(c.config, OpCreate)
	return &UnlockedAchievementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UnlockedAchievement entities.
func (c *UnlockedAchievementClient) CreateBulk(builders ...*UnlockedAchievementCreate) *UnlockedAchievementCreateBulk {
	return &UnlockedAchievementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UnlockedAchievementClient) MapCreateBulk(slice any, setFunc func(*UnlockedAchievementCreate, int)) *UnlockedAchievementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UnlockedAchievementCreateBulk{err: fmt.Errorf("calling to UnlockedAchievementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UnlockedAchievementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UnlockedAchievementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UnlockedAchievement.
func (c *UnlockedAchievementClient) Update() *UnlockedAchievementUpdate {
	mutation := newUnlockedAchievementMutation(c.config, OpUpdate)
	return &UnlockedAchievementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UnlockedAchievementClient) UpdateOne(_m *UnlockedAchievement) *UnlockedAchievementUpdateOne {
	mutation := newUnlockedAchievementMutation(c.config, OpUpdateOne, withUnlockedAchievement(_m))
	return &UnlockedAchievementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UnlockedAchievementClient) UpdateOneID(id int) *UnlockedAchievementUpdateOne {
	mutation := newUnlockedAchievementMutation(c.config, OpUpdateOne, withUnlockedAchievementID(id))
	return &UnlockedAchievementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UnlockedAchievement.
func (c *UnlockedAchievementClient) Delete() *UnlockedAchievementDelete {
	mutation := newUnlockedAchievementMutation(c.config, OpDelete)
	return &UnlockedAchievementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UnlockedAchievementClient) DeleteOne(_m *UnlockedAchievement) *UnlockedAchievementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UnlockedAchievementClient) DeleteOneID(id int) *UnlockedAchievementDeleteOne {
	builder := c.Delete().Where(unlockedachievement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UnlockedAchievementDeleteOne{builder}
}

// Query returns a query builder for UnlockedAchievement.
func (c *UnlockedAchievementClient) Query() *UnlockedAchievementQuery {
	return &UnlockedAchievementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUnlockedAchievement},
		inters: c.Interceptors(),
	}
}

// Get returns a UnlockedAchievement entity by its id.
func (c *UnlockedAchievementClient) Get(ctx context.Context, id int) (*UnlockedAchievement, error) {
	return c.Query().Where(unlockedachievement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UnlockedAchievementClient) GetX(ctx context.Context, id int) *UnlockedAchievement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UnlockedAchievementClient) Hooks() []Hook {
	return c.hooks.UnlockedAchievement
}

// Interceptors returns the client interceptors.
func (c *UnlockedAchievementClient) Interceptors() []Interceptor {
	return c.inters.UnlockedAchievement
}

func (c *UnlockedAchievementClient) mutate(ctx context.Context, m *UnlockedAchievementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UnlockedAchievementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UnlockedAchievementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UnlockedAchievementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UnlockedAchievementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UnlockedAchievement mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Flashcard, LearnerProfile, PointsEntry, UnlockedAchievement []ent.Hook
	}
	inters struct {
		Flashcard, LearnerProfile, PointsEntry, UnlockedAchievement []ent.Interceptor
	}
)
