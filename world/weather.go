package world

// Weather identifies an ambient weather theme. The wire format carries a
// u16 id; ids outside the known range fold to WeatherDefault rather than
// failing, so snapshots from newer game builds stay readable.
type Weather uint16

const (
	WeatherDefault Weather = iota
	WeatherSunset
	WeatherNight
	WeatherDesert
	WeatherSunny
	WeatherRainyCity
	WeatherHarvest
	WeatherMars
	WeatherSpooky
	WeatherMaw
	WeatherBlank
	WeatherSnowy
	WeatherGrowch
	WeatherGrowchHappy
	WeatherUndersea
	WeatherWarp
	WeatherComet
	WeatherComet2
	WeatherParty
	WeatherPineapple
	WeatherSnowyNight
	WeatherSpring
	WeatherWolf
	WeatherNotInitialized
	WeatherPurpleHaze
	WeatherFireHaze
	WeatherGreenHaze
	WeatherAquaHaze
	WeatherCustomHaze
	WeatherCustomItems
	WeatherPagoda
	WeatherApocalypse
	WeatherJungle
	WeatherBalloonWarz
	WeatherBackground
	WeatherAutumn
	WeatherHearth
	WeatherStPatricks
	WeatherIceAge
	WeatherVolcano
	WeatherFloatingIslands
	WeatherMascot
	WeatherDigitalRain
	WeatherMonoChrome
	WeatherTreasure
	WeatherSurgery
	WeatherBountiful
	WeatherMeteor
	WeatherStars
	WeatherAscended
	WeatherDestroyed
	WeatherGrowtopiaSign
	WeatherDungeon
	WeatherLegendaryCity
	WeatherBloodDragon
	WeatherPopCity
	WeatherAnzu
	WeatherTmntCity
	WeatherRadCity
	WeatherPlaze
	WeatherNebula
	WeatherProtoStar
	WeatherDarkMountains
	WeatherAc15
	WeatherMountGrowMore
	WeatherCrackInReality
	WeatherLnyNian
	WeatherRaymanLock
	WeatherSteampunk
	WeatherRealmOfSpirits
	WeatherBlackhole
	WeatherGems
	WeatherHolidayHaven
	WeatherFenyxLock
	WeatherEnchantedLock
	WeatherRoyalEnchantedLock
	WeatherNeptunesAtlantis
	WeatherPinuskiPetalPerfectHaven
	WeatherCandyland

	weatherMax = WeatherCandyland
)

// WeatherFromID maps a wire id to a Weather. Out-of-range ids are folded to
// WeatherDefault, never an error.
func WeatherFromID(id uint16) Weather {
	if Weather(id) > weatherMax {
		return WeatherDefault
	}
	return Weather(id)
}

var weatherNames = [...]string{
	"Default", "Sunset", "Night", "Desert", "Sunny", "RainyCity", "Harvest",
	"Mars", "Spooky", "Maw", "Blank", "Snowy", "Growch", "GrowchHappy",
	"Undersea", "Warp", "Comet", "Comet2", "Party", "Pineapple", "SnowyNight",
	"Spring", "Wolf", "NotInitialized", "PurpleHaze", "FireHaze", "GreenHaze",
	"AquaHaze", "CustomHaze", "CustomItems", "Pagoda", "Apocalypse", "Jungle",
	"BalloonWarz", "Background", "Autumn", "Hearth", "StPatricks", "IceAge",
	"Volcano", "FloatingIslands", "Mascot", "DigitalRain", "MonoChrome",
	"Treasure", "Surgery", "Bountiful", "Meteor", "Stars", "Ascended",
	"Destroyed", "GrowtopiaSign", "Dungeon", "LegendaryCity", "BloodDragon",
	"PopCity", "Anzu", "TmntCity", "RadCity", "Plaze", "Nebula", "ProtoStar",
	"DarkMountains", "Ac15", "MountGrowMore", "CrackInReality", "LnyNian",
	"RaymanLock", "Steampunk", "RealmOfSpirits", "Blackhole", "Gems",
	"HolidayHaven", "FenyxLock", "EnchantedLock", "RoyalEnchantedLock",
	"NeptunesAtlantis", "PinuskiPetalPerfectHaven", "Candyland",
}

func (w Weather) String() string {
	if w > weatherMax {
		return "Default"
	}
	return weatherNames[w]
}
