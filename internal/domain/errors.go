package domain

import "errors"

// ErrNoSupplierData means every configured supplier failed to deliver a
// payload, so there is nothing to merge.
var ErrNoSupplierData = errors.New("no supplier data available")
