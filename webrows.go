// Package webrows provides handlers that read remote resources (web pages,
// CSV files, RSS/Atom feeds) into rows. Each handler accepts a small
// positional-argument input, fetches one or more URLs concurrently, extracts
// structured records with a format-specific extractor, projects requested
// properties, and streams the result out as a JSON array of arrays.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named after
// their primary dependency (e.g., http/, goquery/, trafilatura/, gofeed/).
package webrows
