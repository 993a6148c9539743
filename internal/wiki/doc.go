// Package wiki is the content-fetch collaborator: a client for a MediaWiki
// action API that returns rendered article markup as parsed Documents.
//
// The client resolves redirects on the service side (redirects=1) and always
// reports the canonical post-redirect title, so the traversal engine can use
// returned titles directly for path and cycle bookkeeping.
//
// Design decision: The engine never imports this package's concrete type; it
// depends on the one-method Fetcher interface defined in internal/walk. That
// keeps the engine testable against in-memory fakes and keeps retry or
// caching policy, if ever added, on this side of the boundary.
package wiki
