package events

// Event names follow {entity}.{action}. Consumers decide fan-out; the core
// only guarantees one well-formed row per committed mutation.
const (
	ShareCreated    = "share.created"
	ShareRevoked    = "share.revoked"
	GuestLinkMinted = "guest_link.minted"
	InviteCreated   = "invite.created"
	InviteRedeemed  = "invite.redeemed"

	ItemReserved  = "item.reserved"
	ItemReleased  = "item.released"
	ItemPurchased = "item.purchased"
	ItemUnmarked  = "item.unmarked"

	LocationCreated       = "location.created"
	LocationDeleted       = "location.deleted"
	ListCreated           = "list.created"
	ListDeleted           = "list.deleted"
	ListVisibilityChanged = "list.visibility_changed"
	ItemCreated           = "item.created"
	ItemUpdated           = "item.updated"
	ItemDeleted           = "item.deleted"
)
