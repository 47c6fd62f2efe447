package tables

// These tables are in their own file because they are large.

import "lantern/types"

// Regions are named after the headstone in the Hunter's Dream that leads to them.
const (
	REGION_DREAM     = "Hunter's Dream"
	REGION_YHARNAM   = "Yharnam Headstone"
	REGION_FRONTIER  = "Frontier Headstone"
	REGION_UNSEEN    = "Unseen Headstone"
	REGION_NIGHTMARE = "Nightmare Headstone"
	REGION_DLC       = "Hunter's Nightmare Headstone"
)

// Zone codes, as kept in the catalog.  On disk they get expanded to 4 bytes (writers.ExpandZoneID).
// Some maps are split into sub-areas, which is what the second byte is for.
var (
	ZONE_HUNTERS_DREAM      = types.ZoneID{0x15, 0x00} // [21, 0]
	ZONE_ABANDONED_WORKSHOP = types.ZoneID{0x15, 0x01} // [21, 1]
	ZONE_HEMWICK            = types.ZoneID{0x16, 0x00} // [22, 0]
	ZONE_OLD_YHARNAM        = types.ZoneID{0x17, 0x00} // [23, 0]
	ZONE_CATHEDRAL_WARD     = types.ZoneID{0x18, 0x00} // [24, 0]
	ZONE_CENTRAL_YHARNAM    = types.ZoneID{0x18, 0x01} // [24, 1]
	ZONE_UPPER_CATHEDRAL    = types.ZoneID{0x18, 0x02} // [24, 2]
	ZONE_CAINHURST          = types.ZoneID{0x19, 0x00} // [25, 0]
	ZONE_MERGOS_LOFT        = types.ZoneID{0x1A, 0x00} // [26, 0]
	ZONE_FORBIDDEN_WOODS    = types.ZoneID{0x1B, 0x00} // [27, 0]
	ZONE_YAHARGUL           = types.ZoneID{0x1C, 0x00} // [28, 0]
	ZONE_BYRGENWERTH        = types.ZoneID{0x20, 0x00} // [32, 0]
	ZONE_LECTURE_BUILDING   = types.ZoneID{0x20, 0x02} // [32, 2]
	ZONE_NIGHTMARE_FRONTIER = types.ZoneID{0x21, 0x00} // [33, 0]
	ZONE_HUNTERS_NIGHTMARE  = types.ZoneID{0x22, 0x00} // [34, 0]
	ZONE_RESEARCH_HALL      = types.ZoneID{0x23, 0x00} // [35, 0]
	ZONE_FISHING_HAMLET     = types.ZoneID{0x24, 0x00} // [36, 0]
)

// catalog is every lantern we know how to get to, in display order.
// The first entry is the default destination: the Dream is always safe to wake up in.
var catalog = []types.Location{
	{Name: "Hunter's Dream", Region: REGION_DREAM, X: -8.0, Y: -6.0, Z: -18.0, Zone: ZONE_HUNTERS_DREAM},

	{Name: "1st Floor Sickroom", Region: REGION_YHARNAM, X: 212.56, Y: -13.25, Z: -178.3, Zone: ZONE_CENTRAL_YHARNAM},
	{Name: "Central Yharnam", Region: REGION_YHARNAM, X: 152.44, Y: 3.52, Z: -84.19, Zone: ZONE_CENTRAL_YHARNAM},
	{Name: "Great Bridge", Region: REGION_YHARNAM, X: 38.17, Y: 12.0, Z: 61.75, Zone: ZONE_CENTRAL_YHARNAM},
	{Name: "Tomb of Oedon", Region: REGION_YHARNAM, X: -27.83, Y: 18.48, Z: 140.6, Zone: ZONE_CENTRAL_YHARNAM},
	{Name: "Cathedral Ward", Region: REGION_YHARNAM, X: -86.25, Y: 46.3, Z: 196.42, Zone: ZONE_CATHEDRAL_WARD},
	{Name: "Grand Cathedral", Region: REGION_YHARNAM, X: -131.9, Y: 88.73, Z: 302.15, Zone: ZONE_CATHEDRAL_WARD},
	{Name: "Upper Cathedral Ward", Region: REGION_YHARNAM, X: -204.61, Y: 121.4, Z: 351.08, Zone: ZONE_UPPER_CATHEDRAL},
	{Name: "Lumenwood Garden", Region: REGION_YHARNAM, X: -246.33, Y: 139.9, Z: 398.5, Zone: ZONE_UPPER_CATHEDRAL},
	{Name: "Altar of Despair", Region: REGION_YHARNAM, X: -301.7, Y: 162.25, Z: 441.12, Zone: ZONE_UPPER_CATHEDRAL},
	{Name: "Old Yharnam", Region: REGION_YHARNAM, X: 96.4, Y: -41.6, Z: 288.75, Zone: ZONE_OLD_YHARNAM},
	{Name: "Church of the Good Chalice", Region: REGION_YHARNAM, X: 141.03, Y: -52.5, Z: 347.9, Zone: ZONE_OLD_YHARNAM},
	{Name: "Graveyard of the Darkbeast", Region: REGION_YHARNAM, X: 188.22, Y: -71.35, Z: 402.6, Zone: ZONE_OLD_YHARNAM},

	{Name: "Hemwick Charnel Lane", Region: REGION_FRONTIER, X: -412.5, Y: 24.75, Z: 96.3, Zone: ZONE_HEMWICK},
	{Name: "Witch's Abode", Region: REGION_FRONTIER, X: -498.18, Y: 41.0, Z: 152.64, Zone: ZONE_HEMWICK},
	{Name: "Forbidden Woods", Region: REGION_FRONTIER, X: 301.25, Y: -18.6, Z: -246.5, Zone: ZONE_FORBIDDEN_WOODS},
	{Name: "Forbidden Grave", Region: REGION_FRONTIER, X: 388.9, Y: -32.15, Z: -331.42, Zone: ZONE_FORBIDDEN_WOODS},
	{Name: "Byrgenwerth", Region: REGION_FRONTIER, X: 456.37, Y: -9.5, Z: -412.8, Zone: ZONE_BYRGENWERTH},
	{Name: "Moonside Lake", Region: REGION_FRONTIER, X: 512.0, Y: -44.25, Z: -468.6, Zone: ZONE_BYRGENWERTH},

	{Name: "Yahar'gul, Unseen Village", Region: REGION_UNSEEN, X: -58.6, Y: 31.2, Z: -96.45, Zone: ZONE_YAHARGUL},
	{Name: "Yahar'gul Chapel", Region: REGION_UNSEEN, X: -101.75, Y: 37.8, Z: -143.2, Zone: ZONE_YAHARGUL},
	{Name: "Advent Plaza", Region: REGION_UNSEEN, X: -147.3, Y: 52.14, Z: -188.9, Zone: ZONE_YAHARGUL},
	{Name: "Hypogean Gaol", Region: REGION_UNSEEN, X: -176.82, Y: 19.5, Z: -231.06, Zone: ZONE_YAHARGUL},
	{Name: "Forsaken Castle Cainhurst", Region: REGION_UNSEEN, X: 642.5, Y: 96.0, Z: 128.25, Zone: ZONE_CAINHURST},
	{Name: "Logarius' Seat", Region: REGION_UNSEEN, X: 701.33, Y: 158.7, Z: 171.4, Zone: ZONE_CAINHURST},
	{Name: "Vileblood Queen's Chamber", Region: REGION_UNSEEN, X: 688.1, Y: 131.25, Z: 204.8, Zone: ZONE_CAINHURST},
	{Name: "Abandoned Old Workshop", Region: REGION_UNSEEN, X: -4.5, Y: -3.0, Z: -9.75, Zone: ZONE_ABANDONED_WORKSHOP},

	{Name: "Lecture Building 1st Floor", Region: REGION_NIGHTMARE, X: 14.6, Y: -2.5, Z: 33.8, Zone: ZONE_LECTURE_BUILDING},
	{Name: "Lecture Building 2nd Floor", Region: REGION_NIGHTMARE, X: 14.6, Y: 5.75, Z: 33.8, Zone: ZONE_LECTURE_BUILDING},
	{Name: "Nightmare Frontier", Region: REGION_NIGHTMARE, X: -221.4, Y: -88.6, Z: 512.3, Zone: ZONE_NIGHTMARE_FRONTIER},
	{Name: "Nightmare of Mensis", Region: REGION_NIGHTMARE, X: 334.9, Y: 61.2, Z: 604.75, Zone: ZONE_MERGOS_LOFT},
	{Name: "Mergo's Loft: Base", Region: REGION_NIGHTMARE, X: 391.5, Y: 118.4, Z: 662.1, Zone: ZONE_MERGOS_LOFT},
	{Name: "Mergo's Loft: Middle", Region: REGION_NIGHTMARE, X: 402.25, Y: 176.9, Z: 688.4, Zone: ZONE_MERGOS_LOFT},
	{Name: "Wet Nurse's Lunarium", Region: REGION_NIGHTMARE, X: 418.6, Y: 231.55, Z: 701.2, Zone: ZONE_MERGOS_LOFT},

	{Name: "Hunter's Nightmare", Region: REGION_DLC, X: 61.75, Y: -21.4, Z: -58.3, Zone: ZONE_HUNTERS_NIGHTMARE},
	{Name: "Nightmare Church", Region: REGION_DLC, X: 104.2, Y: -6.85, Z: -121.6, Zone: ZONE_HUNTERS_NIGHTMARE},
	{Name: "Nightmare Grand Cathedral", Region: REGION_DLC, X: 151.9, Y: 28.3, Z: -176.45, Zone: ZONE_HUNTERS_NIGHTMARE},
	{Name: "Underground Corpse Pile", Region: REGION_DLC, X: 123.5, Y: -64.7, Z: -203.1, Zone: ZONE_HUNTERS_NIGHTMARE},
	{Name: "Research Hall", Region: REGION_DLC, X: -76.2, Y: 12.9, Z: -288.5, Zone: ZONE_RESEARCH_HALL},
	{Name: "Astral Clocktower", Region: REGION_DLC, X: -118.45, Y: 74.1, Z: -341.25, Zone: ZONE_RESEARCH_HALL},
	{Name: "Fishing Hamlet", Region: REGION_DLC, X: -263.8, Y: -102.5, Z: -402.7, Zone: ZONE_FISHING_HAMLET},
	{Name: "Lighthouse Hut", Region: REGION_DLC, X: -301.15, Y: -96.25, Z: -455.9, Zone: ZONE_FISHING_HAMLET},
	{Name: "Coast", Region: REGION_DLC, X: -352.6, Y: -121.0, Z: -498.35, Zone: ZONE_FISHING_HAMLET},
}

// All returns the catalog in display order.
// The slice is shared; callers must not modify it.
func All() []types.Location {
	return catalog
}

// Default is the destination used when nothing else was asked for.
func Default() *types.Location {
	return &catalog[0]
}
