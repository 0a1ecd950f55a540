// Package cli implements the easysh command-line interface.
//
// # Overview
//
// easysh renders a built-in template catalog into a project scaffold archive.
// The CLI shares the generation core with the easyshd HTTP server; it adds
// local file output, OCI registry publishing and catalog inspection.
//
// # Commands
//
// generate - Build a scaffold archive:
//
//	easysh generate --config FILE|URL|- [--output DIR|FILE.zip|oci://registry/repo[:tag]]
//	    [--checksums] [--concurrency N] [--plain-http] [--insecure-tls]
//
// Writes <projectName>.zip into the output directory (default "."), to the
// given .zip path, or pushes it as a single-layer OCI artifact.
//
// catalog - Inspect the template catalog:
//
//	easysh catalog [--config FILE] [--format yaml|json|table] [--output FILE]
//
// Lists partitions and templates with the archive path each one renders to.
//
// validate - Check a configuration:
//
//	easysh validate --config FILE [--fail-on-empty] [--format yaml|json|table]
//
// # Global Flags
//
//	--log-level   debug, info, warn or error (env LOG_LEVEL)
//	--debug       shorthand for --log-level debug
//	--version     print the version and exit
//
// Logs are JSON on stderr; command output goes to stdout unless --output is
// set.
package cli
