// Package web hosts the browser-facing crowdfunding front end.
//
// The server composes the public and campaigns modules behind a shared
// middleware chain, talks to the campaign REST API through a circuit-broken
// gateway and optionally keeps a SQLite read-through cache of API reads.
package web
