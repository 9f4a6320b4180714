package pickup

import (
	"time"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/pkg/errs"
)

// ErrSessionIsNotConstructed indicates a Session was not created via
// NewSession or RestoreSession.
var ErrSessionIsNotConstructed = errs.NewValueIsRequiredError(
	"session must be created via NewSession or RestoreSession",
)

// LineItemVerification is the partner's verdict on one order line item.
type LineItemVerification struct {
	Verified      bool
	ConditionNote string
}

// Session is the state of one pickup verification run: a stage pointer,
// the per-item completion set, per-line-item verifications, photo
// evidence refs, and the signature flag. It belongs to the single
// delivery partner who opened it and never writes back to the order;
// the order only changes when the completed session is handed to the
// lifecycle side.
type Session struct {
	id           kernel.UUID
	orderID      kernel.UUID
	partnerID    kernel.UUID
	stage        Stage
	lineItemIDs  []kernel.UUID
	checked      map[string]bool
	verified     map[kernel.UUID]LineItemVerification
	photoRefs    []string
	signature    bool
	startedAt    time.Time
	lastActivity time.Time

	isConstructed bool
}

// NewSession opens a pickup session for an order. The caller supplies the
// order's line item identifiers; every one of them must be verified before
// the verification stage can be left.
func NewSession(
	orderID, partnerID kernel.UUID,
	lineItemIDs []kernel.UUID,
	now time.Time,
) (*Session, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := partnerID.Validate(); err != nil {
		return nil, err
	}
	if len(lineItemIDs) == 0 {
		return nil, errs.NewValueIsRequiredError("lineItemIDs")
	}
	for _, id := range lineItemIDs {
		if err := id.Validate(); err != nil {
			return nil, err
		}
	}
	if now.IsZero() {
		return nil, errs.NewValueIsRequiredError("now")
	}

	return &Session{
		id:            kernel.NewUUID(),
		orderID:       orderID,
		partnerID:     partnerID,
		stage:         StageLocation,
		lineItemIDs:   append([]kernel.UUID(nil), lineItemIDs...),
		checked:       make(map[string]bool),
		verified:      make(map[kernel.UUID]LineItemVerification),
		startedAt:     now,
		lastActivity:  now,
		isConstructed: true,
	}, nil
}

// RestoreSession reconstructs a session from the session store.
func RestoreSession(
	id, orderID, partnerID kernel.UUID,
	stage Stage,
	lineItemIDs []kernel.UUID,
	checked map[string]bool,
	verified map[kernel.UUID]LineItemVerification,
	photoRefs []string,
	signature bool,
	startedAt, lastActivity time.Time,
) (*Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := partnerID.Validate(); err != nil {
		return nil, err
	}
	if err := stage.Validate(); err != nil {
		return nil, err
	}
	if len(lineItemIDs) == 0 {
		return nil, errs.NewValueIsRequiredError("lineItemIDs")
	}
	if checked == nil {
		checked = make(map[string]bool)
	}
	if verified == nil {
		verified = make(map[kernel.UUID]LineItemVerification)
	}

	return &Session{
		id:            id,
		orderID:       orderID,
		partnerID:     partnerID,
		stage:         stage,
		lineItemIDs:   append([]kernel.UUID(nil), lineItemIDs...),
		checked:       checked,
		verified:      verified,
		photoRefs:     append([]string(nil), photoRefs...),
		signature:     signature,
		startedAt:     startedAt,
		lastActivity:  lastActivity,
		isConstructed: true,
	}, nil
}

// Validate ensures the session was created via a constructor.
func (s *Session) Validate() error {
	if !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

// ID returns the session identifier.
func (s *Session) ID() kernel.UUID {
	return s.id
}

// OrderID returns the order this session verifies.
func (s *Session) OrderID() kernel.UUID {
	return s.orderID
}

// PartnerID returns the delivery partner who owns the session.
func (s *Session) PartnerID() kernel.UUID {
	return s.partnerID
}

// Stage returns the current stage pointer.
func (s *Session) Stage() Stage {
	return s.stage
}

// LineItemIDs returns a copy of the line item identifiers under verification.
func (s *Session) LineItemIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), s.lineItemIDs...)
}

// IsChecked reports whether a checklist item is currently checked.
func (s *Session) IsChecked(itemID string) bool {
	return s.checked[itemID]
}

// CheckedItems returns a copy of the per-item completion set.
func (s *Session) CheckedItems() map[string]bool {
	out := make(map[string]bool, len(s.checked))
	for id, v := range s.checked {
		out[id] = v
	}
	return out
}

// Verification returns the recorded verdict for a line item, if any.
func (s *Session) Verification(lineItemID kernel.UUID) (LineItemVerification, bool) {
	v, ok := s.verified[lineItemID]
	return v, ok
}

// Verifications returns a copy of all recorded line item verdicts.
func (s *Session) Verifications() map[kernel.UUID]LineItemVerification {
	out := make(map[kernel.UUID]LineItemVerification, len(s.verified))
	for id, v := range s.verified {
		out[id] = v
	}
	return out
}

// PhotoRefs returns a copy of the captured photo evidence references.
func (s *Session) PhotoRefs() []string {
	return append([]string(nil), s.photoRefs...)
}

// IsSignatureCaptured reports whether the handover signature was captured.
func (s *Session) IsSignatureCaptured() bool {
	return s.signature
}

// StartedAt returns when the session was opened.
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// LastActivity returns the time of the last session operation. The reaper
// uses it to discard sessions idle beyond the configured interval.
func (s *Session) LastActivity() time.Time {
	return s.lastActivity
}

// CheckItem toggles one checklist item. Toggling is idempotent and legal
// at any stage; only stage advancement enforces gates.
func (s *Session) CheckItem(itemID string, checked bool, now time.Time) error {
	if !isKnownChecklistItem(itemID) {
		return errs.NewObjectNotFoundError("itemID", itemID)
	}

	s.checked[itemID] = checked
	s.lastActivity = now
	return nil
}

// VerifyLineItem records the partner's verdict on one line item, with an
// optional free-text condition note. Re-verifying overwrites the verdict.
func (s *Session) VerifyLineItem(
	lineItemID kernel.UUID,
	verified bool,
	conditionNote string,
	now time.Time,
) error {
	if !s.hasLineItem(lineItemID) {
		return errs.NewObjectNotFoundError("lineItemID", lineItemID)
	}

	s.verified[lineItemID] = LineItemVerification{
		Verified:      verified,
		ConditionNote: conditionNote,
	}
	s.lastActivity = now
	return nil
}

// CapturePhoto registers a new photo evidence reference and returns it.
// The photo count only grows; there is no upper bound.
func (s *Session) CapturePhoto(now time.Time) string {
	ref := kernel.NewUUID().String()
	s.photoRefs = append(s.photoRefs, ref)
	s.lastActivity = now
	return ref
}

// CaptureSignature marks the handover signature as captured.
func (s *Session) CaptureSignature(now time.Time) {
	s.signature = true
	s.lastActivity = now
}

// AdvanceStage moves the stage pointer forward once the current stage's
// exit gate holds.
func (s *Session) AdvanceStage(now time.Time) (Stage, error) {
	if s.stage.IsFinal() {
		return s.stage, errs.NewPreconditionFailedError("already at the final stage")
	}
	if err := s.stageGate(s.stage); err != nil {
		return s.stage, err
	}

	s.stage = s.stage.Next()
	s.lastActivity = now
	return s.stage, nil
}

// RetreatStage moves the stage pointer back. Backward navigation is always
// allowed; nothing already recorded is lost.
func (s *Session) RetreatStage(now time.Time) (Stage, error) {
	if s.stage == StageLocation {
		return s.stage, errs.NewPreconditionFailedError("already at the first stage")
	}

	s.stage = s.stage.Prev()
	s.lastActivity = now
	return s.stage, nil
}

// CompletionGate reports whether the whole workflow is complete: final
// stage reached with its exit gate satisfied. A nil return means the
// session may be handed to the lifecycle side.
func (s *Session) CompletionGate() error {
	if !s.stage.IsFinal() {
		return errs.NewPreconditionFailedError("confirmation stage not reached")
	}
	return s.stageGate(StageConfirmation)
}

// CompletionPercent derives the UI progress figure: checked items plus
// verified line items over the total of both. Never persisted.
func (s *Session) CompletionPercent() int {
	total := len(ChecklistItems()) + len(s.lineItemIDs)

	done := 0
	for _, item := range ChecklistItems() {
		if s.checked[item.ID] {
			done++
		}
	}
	for _, id := range s.lineItemIDs {
		if s.verified[id].Verified {
			done++
		}
	}

	return done * 100 / total
}

func (s *Session) hasLineItem(lineItemID kernel.UUID) bool {
	for _, id := range s.lineItemIDs {
		if id.IsEqual(lineItemID) {
			return true
		}
	}
	return false
}

func (s *Session) allItemsChecked(stage Stage) bool {
	for _, item := range ChecklistItemsForStage(stage) {
		if !s.checked[item.ID] {
			return false
		}
	}
	return true
}

func (s *Session) allLineItemsVerified() bool {
	for _, id := range s.lineItemIDs {
		if !s.verified[id].Verified {
			return false
		}
	}
	return true
}

func (s *Session) hasPhotoPerLineItem() bool {
	return len(s.photoRefs) >= len(s.lineItemIDs)
}

func (s *Session) stageGate(stage Stage) error {
	switch stage {
	case StageLocation:
		if !s.allItemsChecked(StageLocation) {
			return errs.NewPreconditionFailedError("all location stage items must be checked")
		}
	case StageVerification:
		if !s.allItemsChecked(StageVerification) {
			return errs.NewPreconditionFailedError("all verification stage items must be checked")
		}
		if !s.allLineItemsVerified() {
			return errs.NewPreconditionFailedError("every line item must be verified")
		}
		if !s.hasPhotoPerLineItem() {
			return errs.NewPreconditionFailedError("at least one photo per line item is required")
		}
	case StageConfirmation:
		if !s.signature {
			return errs.NewPreconditionFailedError("signature must be captured")
		}
		for _, st := range []Stage{StageLocation, StageVerification, StageConfirmation} {
			if !s.allItemsChecked(st) {
				return errs.NewPreconditionFailedError("full checklist must be checked")
			}
		}
		if !s.hasPhotoPerLineItem() {
			return errs.NewPreconditionFailedError("at least one photo per line item is required")
		}
	default:
		return errs.NewValueIsInvalidError("stage")
	}

	return nil
}
