// Package server exposes the chat handler over HTTP: a websocket endpoint
// that carries the conversation and a small static page that talks to it.
package server
