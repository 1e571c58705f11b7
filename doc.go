// Package pft provides the core types and operations for tracking a
// personal stock portfolio. It is designed to be local-first: the
// portfolio is a plain, human-readable JSON file the user fully owns.
//
// The core functionalities include:
//   - Portfolio Management: an ordered, duplicate-free list of ticker
//     symbols with add, remove, list and refresh operations.
//   - Configuration Persistence: loading, default-creation and saving of
//     the portfolio configuration file.
//   - Enrichment: descriptive metadata for each ticker (company, industry,
//     sector, peers, sector ETF) obtained through a stock-info service.
//
// This package serves as the foundational logic for the `pft` command-line
// tool; all front-ends (one-shot verbs and the interactive menu) go through
// the same Manager operations.
package pft
