package repository

import "errors"

// ErrNotFound indica que nenhum registro foi afetado ou encontrado
var ErrNotFound = errors.New("registro não encontrado")
