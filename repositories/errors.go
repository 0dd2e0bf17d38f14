package repositories

import "errors"

// Sentinel errors supaya controller bisa membedakan jenis kegagalan
// dengan errors.Is dan memilih status code yang tepat.
var (
	ErrSparepartNotFound   = errors.New("sparepart not found")
	ErrSupplierNotFound    = errors.New("supplier not found")
	ErrEquipmentNotFound   = errors.New("equipment not found")
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrStockInNotFound     = errors.New("stock in record not found")
	ErrStockOutNotFound    = errors.New("stock out request not found")
	ErrOpnameNotFound      = errors.New("stock opname session not found")
	ErrInvalidQuantity     = errors.New("quantity must be a positive number")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrHasReferences       = errors.New("record is still referenced by transaction data")
	ErrDuplicateOpnameItem = errors.New("duplicate sparepart in opname items")
	ErrDuplicateOpnameCode = errors.New("opname code already taken, please retry")
	ErrEmptyOpnameItems    = errors.New("opname items cannot be empty")
)
