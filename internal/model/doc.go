// Package model defines the core data structures shared across the traversal
// engine, the content-fetch client, and the report writers.
//
// This package contains the following main types:
//   - Document: one article's rendered markup at a given detail level
//   - Level: how much of an article a Document covers (lead or full)
//   - Outcome: the terminal result of one traversal, with its path
//   - Status: the tag distinguishing how a traversal ended
//
// Title helpers (NormalizeTitle, SameTitle, IsMainspace) also live here so
// that every package compares articles by the same canonical identity.
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (wiki, walk, report) need to use these
// types, so centralizing them prevents import cycles.
package model
