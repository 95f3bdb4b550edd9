package types

type ConstError string

func (err ConstError) Error() string { return string(err) }

const (
	NotFoundErr         ConstError = "not found"
	DuplicateNameErr    ConstError = "name already exists"
	NameTooLongErr      ConstError = "name too long"
	InvalidNameErr      ConstError = "invalid name"
	TableFullErr        ConstError = "entry table full"
	OutOfSpaceErr       ConstError = "insufficient contiguous free blocks"
	NotAFileErr         ConstError = "not a file"
	NotADirErr          ConstError = "not a directory"
	IsADirErr           ConstError = "is a directory"
	EmptyFileErr        ConstError = "empty file"
	CannotDeleteRootErr ConstError = "cannot delete the root directory"
	CycleDetectedErr    ConstError = "cycle detected in directory tree"
)
