// Package filesystem provides the filesystem carrierlock reads rules and
// slot files from and writes configuration and converted documents to.
//
// NewOS is backed by the operating system. NewAferoFS wraps any afero
// filesystem, which tests use to work from memory.
package filesystem
