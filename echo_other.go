//go:build !linux

package main

import "errors"

// Echo control is only wired up for Linux termios
func disableEcho(int) (func(), error) {

	return nil, errors.New("echo control not supported")
}
