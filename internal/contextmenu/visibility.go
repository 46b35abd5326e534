package contextmenu

// VisibilityEvaluator supplies the observer's sight level and combines it
// with the sprite's own visibility gate.
type VisibilityEvaluator struct {
	Players Sessions
	Sights  Query[MobSight]
}

// SeeInvisible returns the see_invisible of the local player's body, or
// MaxSightLevel when there is no session, no body or no sight component.
func (v *VisibilityEvaluator) SeeInvisible() SightLevel {
	if v == nil || v.Players == nil {
		return MaxSightLevel
	}
	session, ok := v.Players.LocalSession()
	if !ok || session == nil {
		return MaxSightLevel
	}
	body, ok := session.AttachedEntity()
	if !ok {
		return MaxSightLevel
	}
	sight, ok := tryGet(v.Sights, body)
	if !ok {
		return MaxSightLevel
	}
	return sight.SeeInvisibility
}

func (v *VisibilityEvaluator) IsVisible(sprite Sprite, xform *Transform, sight SightLevel) bool {
	if sprite == nil {
		return false
	}
	return sprite.IsVisible(xform, sight)
}
