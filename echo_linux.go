package main

import "golang.org/x/sys/unix"

//
// Turn off input echo on a terminal, leaving ISIG and canonical mode
// alone so ^C still raises SIGINT.  Returns a function that puts the
// old settings back
//

func disableEcho(fd int) (func(), error) {

	old, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return nil, err
	}

	quiet := *old
	quiet.Lflag &^= unix.ECHO

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, &quiet); err != nil {
		return nil, err
	}

	return func() {
		_ = unix.IoctlSetTermios(fd, unix.TCSETS, old)
	}, nil
}
