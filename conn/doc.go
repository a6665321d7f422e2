// Package conn implements buses for the display driver.
//
// [Parallel] drives an 8080-style 8-bit parallel interface over GPIO pins and
// [Recorder] captures the command stream without hardware, for tests and dry runs.
package conn
