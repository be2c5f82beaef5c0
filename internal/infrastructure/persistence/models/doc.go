// Package models holds the GORM persistence models and their mapping to
// domain entities. Domain packages stay free of storage tags.
package models
