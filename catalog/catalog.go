// Package catalog stores the product database behind the catalog
// tools.
package catalog

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// Product is one catalog entry.
type Product struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// Store is a SQLite-backed product catalog.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the catalog database at path and seeds it
// with starter products when empty.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}

	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			price REAL NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create products table: %w", err)
	}

	return s.seed()
}

// seed fills an empty catalog with starter products so a fresh install
// has something to show.
func (s *Store) seed() error {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	starter := []Product{
		{Name: "Green tea", Category: "beverages", Price: 4.50},
		{Name: "Black tea", Category: "beverages", Price: 3.90},
		{Name: "Coffee beans", Category: "beverages", Price: 12.00},
		{Name: "Apples", Category: "fruit", Price: 2.30},
		{Name: "Bananas", Category: "fruit", Price: 1.80},
		{Name: "Dark chocolate", Category: "sweets", Price: 3.20},
	}
	for _, p := range starter {
		if _, err := s.db.Exec(
			`INSERT INTO products (name, category, price) VALUES (?, ?, ?)`,
			p.Name, p.Category, p.Price,
		); err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
	}

	return nil
}

// List returns all products ordered by ID.
func (s *Store) List() ([]Product, error) {
	rows, err := s.db.Query(`SELECT id, name, category, price FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// Find returns products whose name contains the query,
// case-insensitively.
func (s *Store) Find(name string) ([]Product, error) {
	pattern := "%" + strings.ToLower(name) + "%"
	rows, err := s.db.Query(
		`SELECT id, name, category, price FROM products WHERE LOWER(name) LIKE ? ORDER BY id`,
		pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// Add inserts a product and returns it with its assigned ID.
func (s *Store) Add(name, category string, price float64) (*Product, error) {
	res, err := s.db.Exec(
		`INSERT INTO products (name, category, price) VALUES (?, ?, ?)`,
		name, category, price,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add product: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read new product ID: %w", err)
	}

	return &Product{ID: id, Name: name, Category: category, Price: price}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func scanProducts(rows *sql.Rows) ([]Product, error) {
	products := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
