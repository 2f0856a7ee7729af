// Package zones maps free-text Tunisian addresses to geographic service
// zones. Transfer quotes use the pickup zone to rank vehicles whose provider
// serves the area.
package zones

import (
	"strings"

	"navetteclub/internal/utils"
)

type Zone string

const (
	ZoneTunisNord      Zone = "Tunis et Nord"
	ZoneSousseSahel    Zone = "Sousse et Sahel"
	ZoneMonastirMahdia Zone = "Monastir et Mahdia"
	ZoneSfax           Zone = "Sfax"
	ZoneKairouan       Zone = "Kairouan"
	ZoneDjerbaSud      Zone = "Djerba et Sud"
	ZoneTozeurDesert   Zone = "Tozeur et Désert"
)

type cityZone struct {
	city string
	zone Zone
}

// cityZones lists exact city matches, checked in order before the keyword
// pass. The order is fixed so an address naming several cities always
// resolves to the same zone. Enfidha airport belongs to the Sousse zone
// despite its northern latitude, and its entry precedes "hammamet" because
// the airport's full name contains both.
var cityZones = []cityZone{
	{"enfidha", ZoneSousseSahel},

	{"tunis-carthage", ZoneTunisNord},
	{"tunis", ZoneTunisNord},
	{"carthage", ZoneTunisNord},
	{"la marsa", ZoneTunisNord},
	{"sidi bou said", ZoneTunisNord},
	{"ariana", ZoneTunisNord},
	{"ben arous", ZoneTunisNord},
	{"manouba", ZoneTunisNord},
	{"bizerte", ZoneTunisNord},
	{"nabeul", ZoneTunisNord},
	{"hammamet", ZoneTunisNord},

	{"sousse", ZoneSousseSahel},
	{"port el kantaoui", ZoneSousseSahel},

	{"monastir", ZoneMonastirMahdia},
	{"mahdia", ZoneMonastirMahdia},

	{"sfax", ZoneSfax},

	{"kairouan", ZoneKairouan},

	{"djerba", ZoneDjerbaSud},
	{"zarzis", ZoneDjerbaSud},
	{"houmt souk", ZoneDjerbaSud},
	{"midoun", ZoneDjerbaSud},
	{"medenine", ZoneDjerbaSud},
	{"gabes", ZoneDjerbaSud},
	{"tataouine", ZoneDjerbaSud},

	{"tozeur", ZoneTozeurDesert},
	{"nefta", ZoneTozeurDesert},
	{"douz", ZoneTozeurDesert},
	{"kebili", ZoneTozeurDesert},
	{"gafsa", ZoneTozeurDesert},
}

type zoneKeywordSet struct {
	zone     Zone
	keywords []string
}

var zoneKeywords = []zoneKeywordSet{
	{ZoneTunisNord, []string{"tunis", "carthage", "ariana", "bizerte", "nabeul", "hammamet", "la marsa"}},
	{ZoneSousseSahel, []string{"sousse", "port el kantaoui", "enfidha"}},
	{ZoneMonastirMahdia, []string{"monastir", "mahdia"}},
	{ZoneSfax, []string{"sfax"}},
	{ZoneKairouan, []string{"kairouan"}},
	{ZoneDjerbaSud, []string{"djerba", "zarzis", "houmt", "midoun", "medenine", "gabes", "tataouine"}},
	{ZoneTozeurDesert, []string{"tozeur", "nefta", "douz", "kebili", "gafsa", "desert"}},
}

func normalize(s string) string {
	return strings.TrimSpace(utils.RemoveAccents(strings.ToLower(s)))
}

// Detect returns the geographic zone of an address, or "" when none matches.
func Detect(address string) Zone {
	if address == "" {
		return ""
	}
	addr := normalize(address)

	for _, cz := range cityZones {
		if strings.Contains(addr, normalize(cz.city)) {
			return cz.zone
		}
	}

	for _, set := range zoneKeywords {
		for _, kw := range set.keywords {
			if strings.Contains(addr, normalize(kw)) {
				return set.zone
			}
		}
	}

	if strings.Contains(addr, "aeroport") || strings.Contains(addr, "airport") {
		switch {
		case strings.Contains(addr, "tunis"):
			return ZoneTunisNord
		case strings.Contains(addr, "enfidha"):
			return ZoneSousseSahel
		case strings.Contains(addr, "djerba"):
			return ZoneDjerbaSud
		case strings.Contains(addr, "tozeur"):
			return ZoneTozeurDesert
		case strings.Contains(addr, "sfax"):
			return ZoneSfax
		case strings.Contains(addr, "monastir"):
			return ZoneMonastirMahdia
		}
	}

	return ""
}

// All lists every zone, for admin forms.
func All() []Zone {
	return []Zone{
		ZoneTunisNord, ZoneSousseSahel, ZoneMonastirMahdia,
		ZoneSfax, ZoneKairouan, ZoneDjerbaSud, ZoneTozeurDesert,
	}
}

// Known reports whether s names a zone, ignoring case and accents.
func Known(s string) bool {
	want := normalize(s)
	for _, z := range All() {
		if normalize(string(z)) == want {
			return true
		}
	}
	return false
}

// ServesZone reports whether a provider's declared service zones cover z.
// Providers with no declared zone serve everywhere.
func ServesZone(serviceZones []string, z Zone) bool {
	if len(serviceZones) == 0 {
		return true
	}
	want := normalize(string(z))
	for _, sz := range serviceZones {
		if normalize(sz) == want {
			return true
		}
	}
	return false
}
