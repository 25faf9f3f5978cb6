package registry

import (
	dErrors "tokenregistry/pkg/domain-errors"
)

// Registry failures. The messages are a compatibility contract: clients match
// on them verbatim, so they must never be reworded.
var (
	// Ownership and approvals.
	ErrNotAdmin              = dErrors.New(dErrors.CodeForbidden, "Ownable: caller is not the owner")
	ErrTransferNotApproved   = dErrors.New(dErrors.CodeForbidden, "ERC721: transfer caller is not owner nor approved")
	ErrBurnNotApproved       = dErrors.New(dErrors.CodeForbidden, "ERC721: burn caller is not owner nor approved")
	ErrTransferWrongOwner    = dErrors.New(dErrors.CodeForbidden, "ERC721: transfer from incorrect owner")
	ErrApproveNotApproved    = dErrors.New(dErrors.CodeForbidden, "ERC721: approve caller is not owner nor approved for all")
	ErrApprovalToOwner       = dErrors.New(dErrors.CodeValidation, "ERC721: approval to current owner")
	ErrApproveToCaller       = dErrors.New(dErrors.CodeValidation, "ERC721: approve to caller")
	ErrTransferToZero        = dErrors.New(dErrors.CodeValidation, "ERC721: transfer to the zero address")
	ErrMintToZero            = dErrors.New(dErrors.CodeValidation, "ERC721: mint to the zero address")
	ErrBalanceOfZero         = dErrors.New(dErrors.CodeValidation, "ERC721: balance query for the zero address")
	ErrTokenAlreadyMinted    = dErrors.New(dErrors.CodeConflict, "ERC721: token already minted")
	ErrNonexistentToken      = dErrors.New(dErrors.CodeNotFound, "ERC721: owner query for nonexistent token")
	ErrApprovedNonexistent   = dErrors.New(dErrors.CodeNotFound, "ERC721: approved query for nonexistent token")
	ErrURINonexistent        = dErrors.New(dErrors.CodeNotFound, "ERC721Metadata: URI query for nonexistent token")
	ErrInvalidRange          = dErrors.New(dErrors.CodeValidation, "ERC721: invalid token range")

	// Lock extension.
	ErrTransferWhileLocked  = dErrors.New(dErrors.CodeConflict, "ERC5058: token transfer while locked")
	ErrLockerNonLocked      = dErrors.New(dErrors.CodeNotFound, "ERC5058: locker query for non-locked token")
	ErrLockNotApproved      = dErrors.New(dErrors.CodeForbidden, "ERC5058: lock caller is not owner nor approved")
	ErrLockWrongOwner       = dErrors.New(dErrors.CodeForbidden, "ERC5058: lock from incorrect owner")
	ErrTokenLocked          = dErrors.New(dErrors.CodeConflict, "ERC5058: token is locked")
	ErrExpiryNotInFuture    = dErrors.New(dErrors.CodeConflict, "ERC5058: expired time must be greater than current block number")
	ErrUnlockNotLocker      = dErrors.New(dErrors.CodeForbidden, "ERC5058: unlock caller is not lock operator")
	ErrUnlockWrongOwner     = dErrors.New(dErrors.CodeForbidden, "ERC5058: unlock from incorrect owner")
	ErrLockApprovalToOwner  = dErrors.New(dErrors.CodeValidation, "ERC5058: lock approval to current owner")
	ErrLockApproveForbidden = dErrors.New(dErrors.CodeForbidden, "ERC5058: lock approve caller is not owner nor approved for all")
	ErrLockApproveToCaller  = dErrors.New(dErrors.CodeValidation, "ERC5058: lock approve to caller")
	ErrLockApprovedNonexist = dErrors.New(dErrors.CodeNotFound, "ERC5058: lock approved query for nonexistent token")

	// Attach extension.
	ErrSlaveNotReceiver      = dErrors.New(dErrors.CodeRelation, "ERC721Attachable: slave to non boundERC721 receiver")
	ErrSlaveIncorrectOwner   = dErrors.New(dErrors.CodeRelation, "ERC721Attachable: slave to incorrect owner")
	ErrSlaveTransfer         = dErrors.New(dErrors.CodeRelation, "ERC721Attachable: slave token transfer not allowed")
	ErrMasterOfNonSlave      = dErrors.New(dErrors.CodeNotFound, "ERC721Attachable: master query for non-slave token")
	ErrSlaveIndexOutOfBounds = dErrors.New(dErrors.CodeNotFound, "ERC721Attachable: slave index out of bounds")

	// Ledger.
	ErrAnonymousCaller  = dErrors.New(dErrors.CodeUnauthorized, "caller address is required")
	ErrBatchTooLarge    = dErrors.New(dErrors.CodeValidation, "batch exceeds maximum size")
	ErrRegistryNotFound = dErrors.New(dErrors.CodeNotFound, "registry not found")
	ErrRegistryExists   = dErrors.New(dErrors.CodeConflict, "registry already deployed")
	ErrFactoryNotFound  = dErrors.New(dErrors.CodeNotFound, "factory not found")
	ErrBoundNotDeployed = dErrors.New(dErrors.CodeNotFound, "bound companion not deployed for registry")
)
