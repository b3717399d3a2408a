// Package main demonstrates usage of the scg-result packages.
package main

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"

	apiError "github.com/next-trace/scg-result/error"
	"github.com/next-trace/scg-result/result"
)

type customer struct {
	id     int
	name   string
	visits int
}

var customers = map[int]*customer{
	42: {id: 42, name: "Ada"},
}

func findCustomer(_ context.Context, id int) (*customer, error) {
	if id < 0 {
		return nil, errors.New("negative customer id")
	}

	// a missing entry is nil and becomes a NullValue error
	return customers[id], nil
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	// Go (value, error) pairs
	n, err := strconv.Atoi("42")
	id := result.FromGo(n, err)
	logger.Info("parsed id", zap.Object("result", id))

	n, err = strconv.Atoi("forty-two")
	bad := result.FromGo(n, err)
	logger.Info("parse failed", zap.Object("result", bad), zap.Error(bad.Err()))

	// Asynchronous chain: lookup, then touch the customer
	for _, raw := range []int{42, 7, -1} {
		task := result.BindAsync(ctx, result.FromValue(raw), findCustomer, result.WithLogger(logger))
		task = result.Then(ctx, task, func(_ context.Context, c *customer) (*customer, error) {
			c.visits++
			return c, nil
		})

		r, err := task.Await(ctx)
		if err != nil {
			logger.Fatal("unrecoverable fault", zap.Error(err))
		}

		r.Effect(func(c *customer) {
			logger.Info("customer", zap.Int("id", c.id), zap.String("name", c.name), zap.Int("visits", c.visits))
		})

		if !r.IsSuccess() {
			logger.Warn("lookup failed", zap.Int("id", raw), zap.Object("result", r))
		}
	}

	// Domain errors
	denied := result.FromError[*customer](apiError.New("customer 42 is archived", 410))
	if _, err := denied.Unwrap(); err != nil {
		logger.Info("unwrap refused", zap.Error(err), zap.NamedError("errors", denied.Err()))
	}
}
