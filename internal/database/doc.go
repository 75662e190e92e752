// Package database manages the SQLite connection, schema migration, and
// constraint error classification for the book catalog.
//
// Per-entity operations live in the authors, publishers, and books
// subpackages, each exposing a Repository over the shared *gorm.DB.
package database
