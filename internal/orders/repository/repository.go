// Package repository persists submitted orders in Postgres.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pxplabs_backend/platform/apperr"
)

const orderNotFoundMessage = "order not found"

// Order is a persisted order record.
type Order struct {
	ID            uuid.UUID
	Name          string
	Email         string
	Phone         string
	ServiceLabels []string
	Budget        string
	Details       string
	Status        string
	CreatedAt     time.Time
}

// CreateOrderParams holds the fields of a new order.
type CreateOrderParams struct {
	Name          string
	Email         string
	Phone         string
	ServiceLabels []string
	Budget        string
	Details       string
}

// Repository is the persistence port of the orders module.
type Repository interface {
	Create(ctx context.Context, params CreateOrderParams) (Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (Order, error)
}

// Repo implements the orders repository on pgx.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new orders repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// Create inserts a new order and returns the stored record.
func (r *Repo) Create(ctx context.Context, params CreateOrderParams) (Order, error) {
	query := `
		INSERT INTO orders (name, email, phone, services, budget, details)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, email, phone, services, budget, details, status, created_at`

	var order Order
	if err := r.pool.QueryRow(ctx, query,
		params.Name, params.Email, params.Phone, params.ServiceLabels, params.Budget, params.Details,
	).Scan(
		&order.ID, &order.Name, &order.Email, &order.Phone,
		&order.ServiceLabels, &order.Budget, &order.Details, &order.Status, &order.CreatedAt,
	); err != nil {
		return Order{}, fmt.Errorf("create order: %w", err)
	}

	return order, nil
}

// GetByID retrieves an order by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Order, error) {
	query := `
		SELECT id, name, email, phone, services, budget, details, status, created_at
		FROM orders
		WHERE id = $1`

	var order Order
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&order.ID, &order.Name, &order.Email, &order.Phone,
		&order.ServiceLabels, &order.Budget, &order.Details, &order.Status, &order.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Order{}, apperr.NotFound(orderNotFoundMessage)
		}
		return Order{}, fmt.Errorf("get order by id: %w", err)
	}

	return order, nil
}
