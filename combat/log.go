package combat

import "log"

// LogListener writes each event on one line, e.g. for the debug host.
func LogListener(l *log.Logger) Listener {
	if l == nil {
		l = log.Default()
	}
	return func(evt Event) {
		switch e := evt.(type) {
		case HealthChanged:
			l.Printf("combat: entity=%s health=%d/%d", e.Actor, e.Current, e.Max)
		case Died:
			l.Printf("combat: entity=%s died, removal in %.1fs", e.Actor, e.RemoveAt)
		case WeaponFired:
			l.Printf("combat: weapon owner=%s fired, ammo=%d", e.Owner, e.AmmoRemaining)
		case WeaponReloaded:
			l.Printf("combat: weapon owner=%s reloaded, ammo=%d", e.Owner, e.Ammo)
		case HitResolved:
			l.Printf("combat: hit at (%.2f, %.2f, %.2f) target=%s", e.Point.X, e.Point.Y, e.Point.Z, e.Target)
		case Scripted:
			l.Printf("combat: entity=%s script event %q", e.Actor, e.Name)
		default:
			l.Printf("combat: %s", evt.Kind())
		}
	}
}
