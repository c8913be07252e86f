package blocks

import "errors"

var ErrInvalidBlock = errors.New("blocks: invalid block")
