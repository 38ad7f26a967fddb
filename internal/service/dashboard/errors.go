package dashboard

import "errors"

var ErrPatientNotFound = errors.New("patient record not found for this user")
