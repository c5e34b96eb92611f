// Package storage declares persistence interfaces for web-owned cache data.
//
// The cache is a derived read optimization over the campaign API and never
// becomes the source of truth for campaigns or donations.
package storage
