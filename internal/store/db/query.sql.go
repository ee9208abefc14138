package db

import (
	"context"

	"github.com/shopspring/decimal"
)

const count = `-- name: Count :one
SELECT count(*)
FROM products
WHERE ($1::boolean IS NULL OR available = $1)
`

func (q *Queries) Count(ctx context.Context, available *bool) (int64, error) {
	row := q.db.QueryRow(ctx, count, available)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const create = `-- name: Create :one
INSERT INTO products (name, description, price, available)
VALUES ($1, $2, $3, $4)
RETURNING id, name, description, price, available, created_at, updated_at
`

type CreateParams struct {
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"available"`
}

func (q *Queries) Create(ctx context.Context, arg CreateParams) (Product, error) {
	row := q.db.QueryRow(ctx, create,
		arg.Name,
		arg.Description,
		arg.Price,
		arg.Available,
	)
	var i Product
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Description,
		&i.Price,
		&i.Available,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const delete = `-- name: Delete :one
DELETE
FROM products
WHERE id = $1
RETURNING id, name, description, price, available, created_at, updated_at
`

func (q *Queries) Delete(ctx context.Context, id int64) (Product, error) {
	row := q.db.QueryRow(ctx, delete, id)
	var i Product
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Description,
		&i.Price,
		&i.Available,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const findAll = `-- name: FindAll :many
SELECT id, name, description, price, available, created_at, updated_at
FROM products
WHERE ($1::boolean IS NULL OR available = $1)
ORDER BY id
LIMIT $3 OFFSET $2::bigint
`

type FindAllParams struct {
	Available *bool `json:"available"`
	Off       int64 `json:"off"`
	Lim       int32 `json:"lim"`
}

func (q *Queries) FindAll(ctx context.Context, arg FindAllParams) ([]Product, error) {
	rows, err := q.db.Query(ctx, findAll, arg.Available, arg.Off, arg.Lim)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Product{}
	for rows.Next() {
		var i Product
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Description,
			&i.Price,
			&i.Available,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const findByID = `-- name: FindByID :one
SELECT id, name, description, price, available, created_at, updated_at
FROM products
WHERE id = $1
  AND ($2::boolean IS NULL OR available = $2)
`

type FindByIDParams struct {
	ID        int64 `json:"id"`
	Available *bool `json:"available"`
}

func (q *Queries) FindByID(ctx context.Context, arg FindByIDParams) (Product, error) {
	row := q.db.QueryRow(ctx, findByID, arg.ID, arg.Available)
	var i Product
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Description,
		&i.Price,
		&i.Available,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const findByIDs = `-- name: FindByIDs :many
SELECT id, name, description, price, available, created_at, updated_at
FROM products
WHERE id = ANY ($1::bigint[])
ORDER BY id
`

func (q *Queries) FindByIDs(ctx context.Context, ids []int64) ([]Product, error) {
	rows, err := q.db.Query(ctx, findByIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Product{}
	for rows.Next() {
		var i Product
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Description,
			&i.Price,
			&i.Available,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const update = `-- name: Update :one
UPDATE products
SET name        = COALESCE($1, name),
    description = COALESCE($2, description),
    price       = COALESCE($3, price),
    available   = COALESCE($4, available),
    updated_at  = now()
WHERE id = $5
  AND ($6::boolean IS NULL OR available = $6)
RETURNING id, name, description, price, available, created_at, updated_at
`

type UpdateParams struct {
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	Price        *decimal.Decimal `json:"price"`
	SetAvailable *bool            `json:"set_available"`
	ID           int64            `json:"id"`
	Available    *bool            `json:"available"`
}

func (q *Queries) Update(ctx context.Context, arg UpdateParams) (Product, error) {
	row := q.db.QueryRow(ctx, update,
		arg.Name,
		arg.Description,
		arg.Price,
		arg.SetAvailable,
		arg.ID,
		arg.Available,
	)
	var i Product
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Description,
		&i.Price,
		&i.Available,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
