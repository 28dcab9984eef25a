package client

import "errors"

var errNoUI = errors.New("interactive client needs a UI")
