package pickup

// ChecklistItem is one fixed entry of the pickup checklist. The item set
// is the same for every order; what varies per order is the line items to
// verify and the photo count those require.
type ChecklistItem struct {
	ID    string
	Stage Stage
	Label string
}

// Checklist item identifiers, grouped by stage.
const (
	ItemWarehouseLocationConfirmed = "warehouse_location_confirmed"
	ItemManagerCredentialsChecked  = "manager_credentials_checked"
	ItemOrderIdentityConfirmed     = "order_identity_confirmed"

	ItemBatchExpiryChecked = "batch_expiry_checked"
	ItemPhotosCaptured     = "photos_captured"

	ItemLoadSecured           = "load_secured"
	ItemDepartureAcknowledged = "departure_acknowledged"
)

// ChecklistItems returns the full checklist in display order.
func ChecklistItems() []ChecklistItem {
	return []ChecklistItem{
		{ID: ItemWarehouseLocationConfirmed, Stage: StageLocation, Label: "Warehouse location confirmed"},
		{ID: ItemManagerCredentialsChecked, Stage: StageLocation, Label: "Manager credentials checked"},
		{ID: ItemOrderIdentityConfirmed, Stage: StageLocation, Label: "Order and customer identity confirmed"},
		{ID: ItemBatchExpiryChecked, Stage: StageVerification, Label: "Batch and expiry dates checked"},
		{ID: ItemPhotosCaptured, Stage: StageVerification, Label: "Item photos captured"},
		{ID: ItemLoadSecured, Stage: StageConfirmation, Label: "Load secured in vehicle"},
		{ID: ItemDepartureAcknowledged, Stage: StageConfirmation, Label: "Departure acknowledged by warehouse"},
	}
}

// ChecklistItemsForStage returns the checklist entries belonging to one stage.
func ChecklistItemsForStage(stage Stage) []ChecklistItem {
	var items []ChecklistItem
	for _, item := range ChecklistItems() {
		if item.Stage == stage {
			items = append(items, item)
		}
	}
	return items
}

func isKnownChecklistItem(id string) bool {
	for _, item := range ChecklistItems() {
		if item.ID == id {
			return true
		}
	}
	return false
}
