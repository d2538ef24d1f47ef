// Package server holds the HTTP server configuration.
//
// The serve command reads the listen port and the optional API key from here;
// when the key is empty the audit endpoints are left unauthenticated.
package server
