package tz

import (
	"log"
	"time"
	_ "time/tzdata"
)

// Paris is the Europe/Paris location used to display event dates. Without a
// tzdata database it degrades to a fixed CET offset.
var Paris = load("Europe/Paris", 1*60*60)

func load(name string, fallbackOffset int) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("⚠️ tz: chargement de %s impossible, décalage fixe utilisé: %v", name, err)
		return time.FixedZone(name, fallbackOffset)
	}
	return loc
}
