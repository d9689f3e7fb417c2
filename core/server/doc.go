// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures and valid values for server settings,
// such as the default response format returned to the chat bot.
//
// # Configuration
//
// The Config struct defines the HTTP port and the default response format
// (plain text lines or chat embeds).
package server
