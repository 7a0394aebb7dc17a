package world

import (
	"strconv"
	"time"
)

// Kind is the discriminant byte selecting which variant payload follows a
// tile's core fields. The range is sparse; unassigned values decode as
// Basic.
type Kind uint8

const (
	KindBasic                     Kind = 0
	KindDoor                      Kind = 1
	KindSign                      Kind = 2
	KindLock                      Kind = 3
	KindSeed                      Kind = 4
	KindMailbox                   Kind = 6
	KindBulletin                  Kind = 7
	KindDice                      Kind = 8
	KindChemicalSource            Kind = 9
	KindAchievementBlock          Kind = 10
	KindHearthMonitor             Kind = 11
	KindDonationBox               Kind = 12
	KindMannequin                 Kind = 14
	KindBunnyEgg                  Kind = 15
	KindGamePack                  Kind = 16
	KindGameGenerator             Kind = 17
	KindXenoniteCrystal           Kind = 18
	KindPhoneBooth                Kind = 19
	KindCrystal                   Kind = 20
	KindCrimeInProgress           Kind = 21
	KindDisplayBlock              Kind = 23
	KindVendingMachine            Kind = 24
	KindFishTankPort              Kind = 25
	KindSolarCollector            Kind = 26
	KindForge                     Kind = 27
	KindGivingTree                Kind = 28
	KindSteamOrgan                Kind = 30
	KindSilkWorm                  Kind = 31
	KindSewingMachine             Kind = 32
	KindCountryFlag               Kind = 33
	KindLobsterTrap               Kind = 34
	KindPaintingEasel             Kind = 35
	KindPetBattleCage             Kind = 36
	KindPetTrainer                Kind = 37
	KindSteamEngine               Kind = 38
	KindLockBot                   Kind = 39
	KindWeatherMachine            Kind = 40
	KindSpiritStorageUnit         Kind = 41
	KindDataBedrock               Kind = 42
	KindShelf                     Kind = 43
	KindVipEntrance               Kind = 44
	KindChallengeTimer            Kind = 45
	KindFishWallMount             Kind = 47
	KindPortrait                  Kind = 48
	KindGuildWeatherMachine       Kind = 49
	KindFossilPrepStation         Kind = 50
	KindDnaExtractor              Kind = 51
	KindHowler                    Kind = 52
	KindChemsynthTank             Kind = 53
	KindStorageBlock              Kind = 54
	KindCookingOven               Kind = 55
	KindAudioRack                 Kind = 56
	KindGeigerCharger             Kind = 57
	KindAdventureBegins           Kind = 58
	KindTombRobber                Kind = 59
	KindBalloonOMatic             Kind = 60
	KindTrainingPort              Kind = 61
	KindItemSucker                Kind = 62
	KindCyBot                     Kind = 63
	KindGuildItem                 Kind = 65
	KindGrowscan                  Kind = 66
	KindContainmentFieldPowerNode Kind = 67
	KindSpiritBoard               Kind = 68
	KindStormyCloud               Kind = 72
	KindTemporaryPlatform         Kind = 73
	KindSafeVault                 Kind = 74
	KindAngelicCountingCloud      Kind = 75
	KindInfinityWeatherMachine    Kind = 77
	KindPineappleGuzzler          Kind = 79
	KindKrakenGalacticBlock       Kind = 80
	KindFriendsEntrance           Kind = 81
	KindTesseractManipulator      Kind = 82
)

var kindNames = map[Kind]string{
	KindBasic:                     "Basic",
	KindDoor:                      "Door",
	KindSign:                      "Sign",
	KindLock:                      "Lock",
	KindSeed:                      "Seed",
	KindMailbox:                   "Mailbox",
	KindBulletin:                  "Bulletin",
	KindDice:                      "Dice",
	KindChemicalSource:            "ChemicalSource",
	KindAchievementBlock:          "AchievementBlock",
	KindHearthMonitor:             "HearthMonitor",
	KindDonationBox:               "DonationBox",
	KindMannequin:                 "Mannequin",
	KindBunnyEgg:                  "BunnyEgg",
	KindGamePack:                  "GamePack",
	KindGameGenerator:             "GameGenerator",
	KindXenoniteCrystal:           "XenoniteCrystal",
	KindPhoneBooth:                "PhoneBooth",
	KindCrystal:                   "Crystal",
	KindCrimeInProgress:           "CrimeInProgress",
	KindDisplayBlock:              "DisplayBlock",
	KindVendingMachine:            "VendingMachine",
	KindFishTankPort:              "FishTankPort",
	KindSolarCollector:            "SolarCollector",
	KindForge:                     "Forge",
	KindGivingTree:                "GivingTree",
	KindSteamOrgan:                "SteamOrgan",
	KindSilkWorm:                  "SilkWorm",
	KindSewingMachine:             "SewingMachine",
	KindCountryFlag:               "CountryFlag",
	KindLobsterTrap:               "LobsterTrap",
	KindPaintingEasel:             "PaintingEasel",
	KindPetBattleCage:             "PetBattleCage",
	KindPetTrainer:                "PetTrainer",
	KindSteamEngine:               "SteamEngine",
	KindLockBot:                   "LockBot",
	KindWeatherMachine:            "WeatherMachine",
	KindSpiritStorageUnit:         "SpiritStorageUnit",
	KindDataBedrock:               "DataBedrock",
	KindShelf:                     "Shelf",
	KindVipEntrance:               "VipEntrance",
	KindChallengeTimer:            "ChallengeTimer",
	KindFishWallMount:             "FishWallMount",
	KindPortrait:                  "Portrait",
	KindGuildWeatherMachine:       "GuildWeatherMachine",
	KindFossilPrepStation:         "FossilPrepStation",
	KindDnaExtractor:              "DnaExtractor",
	KindHowler:                    "Howler",
	KindChemsynthTank:             "ChemsynthTank",
	KindStorageBlock:              "StorageBlock",
	KindCookingOven:               "CookingOven",
	KindAudioRack:                 "AudioRack",
	KindGeigerCharger:             "GeigerCharger",
	KindAdventureBegins:           "AdventureBegins",
	KindTombRobber:                "TombRobber",
	KindBalloonOMatic:             "BalloonOMatic",
	KindTrainingPort:              "TrainingPort",
	KindItemSucker:                "ItemSucker",
	KindCyBot:                     "CyBot",
	KindGuildItem:                 "GuildItem",
	KindGrowscan:                  "Growscan",
	KindContainmentFieldPowerNode: "ContainmentFieldPowerNode",
	KindSpiritBoard:               "SpiritBoard",
	KindStormyCloud:               "StormyCloud",
	KindTemporaryPlatform:         "TemporaryPlatform",
	KindSafeVault:                 "SafeVault",
	KindAngelicCountingCloud:      "AngelicCountingCloud",
	KindInfinityWeatherMachine:    "InfinityWeatherMachine",
	KindPineappleGuzzler:          "PineappleGuzzler",
	KindKrakenGalacticBlock:       "KrakenGalacticBlock",
	KindFriendsEntrance:           "FriendsEntrance",
	KindTesseractManipulator:      "TesseractManipulator",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// TileType is the closed set of variant payloads a tile can carry. Exactly
// one implementation exists per discriminant; Basic is the zero payload.
type TileType interface {
	Kind() Kind
}

// Basic is a tile with no variant payload.
type Basic struct{}

// Door carries the door label text.
type Door struct {
	Text    string
	Unknown uint8
}

// Sign carries the sign text.
type Sign struct {
	Text string
}

// Lock is a world or area lock. AccessUIDs lists the granted player uids.
type Lock struct {
	AccessUIDs   []uint32
	OwnerUID     uint32
	AccessCount  uint32
	Settings     uint8
	MinimumLevel uint8
}

// Seed is a planted seed. ReadyToHarvest is derived at decode time from the
// foreground item's grow time; DecodedAt anchors TimePassed so wall-clock
// time can be added later without re-parsing.
type Seed struct {
	DecodedAt      time.Time
	TimePassed     uint32
	ItemOnTree     uint8
	ReadyToHarvest bool
}

type Mailbox struct {
	Unknown1 string
	Unknown2 string
	Unknown3 string
	Unknown4 uint8
}

type Bulletin struct {
	Unknown1 string
	Unknown2 string
	Unknown3 string
	Unknown4 uint8
}

type Dice struct {
	Symbol uint8
}

// ChemicalSource shares Seed's harvest-readiness semantics.
type ChemicalSource struct {
	DecodedAt      time.Time
	TimePassed     uint32
	ReadyToHarvest bool
}

type AchievementBlock struct {
	Unknown  uint32
	TileType uint8
}

type HearthMonitor struct {
	PlayerName string
	Unknown    uint32
}

type DonationBox struct {
	Unknown1 string
	Unknown2 string
	Unknown3 string
	Unknown4 uint8
}

type Mannequin struct {
	Text       string
	Clothing1  uint32
	Clothing2  uint16
	Clothing3  uint16
	Clothing4  uint16
	Clothing5  uint16
	Clothing6  uint16
	Clothing7  uint16
	Clothing8  uint16
	Clothing9  uint16
	Clothing10 uint16
	Unknown    uint8
}

type BunnyEgg struct {
	EggsPlaced uint32
}

type GamePack struct {
	Team uint8
}

type GameGenerator struct{}

type XenoniteCrystal struct {
	Unknown1 uint8
	Unknown2 uint32
}

type PhoneBooth struct {
	Clothing1 uint16
	Clothing2 uint16
	Clothing3 uint16
	Clothing4 uint16
	Clothing5 uint16
	Clothing6 uint16
	Clothing7 uint16
	Clothing8 uint16
	Clothing9 uint16
}

type Crystal struct {
	Unknown string
}

type CrimeInProgress struct {
	Unknown1 string
	Unknown2 uint32
	Unknown3 uint8
}

type DisplayBlock struct {
	ItemID uint32
}

type VendingMachine struct {
	ItemID uint32
	Price  int32
}

type GivingTree struct {
	Unknown1 uint16
	Unknown2 uint32
}

type CountryFlag struct {
	Country string
}

type WeatherMachine struct {
	Settings uint32
}

type DataBedrock struct{}

// FishInfo is one tank resident: item id and weight in pounds.
type FishInfo struct {
	FishItemID uint32
	Lbs        uint32
}

type FishTankPort struct {
	Fishes []FishInfo
	Flags  uint8
}

type SolarCollector struct {
	Unknown [5]uint8
}

type Forge struct {
	Temperature uint32
}

type SteamOrgan struct {
	InstrumentType uint8
	Note           uint32
}

// SilkWormColor is the worm's ARGB tint.
type SilkWormColor struct {
	A uint8
	R uint8
	G uint8
	B uint8
}

type SilkWorm struct {
	Name         string
	Age          uint32
	Unknown1     uint32
	Unknown2     uint32
	SickDuration uint32
	Color        SilkWormColor
	Type         uint8
	CanBeFed     uint8
}

type SewingMachine struct {
	BoltIDs []uint32
}

type LobsterTrap struct{}

type PaintingEasel struct {
	Label  string
	ItemID uint32
}

type PetBattleCage struct {
	Label        string
	BasePet      uint32
	CombinedPet1 uint32
	CombinedPet2 uint32
}

type PetTrainer struct {
	Name          string
	PetIDs        []uint32
	PetTotalCount uint32
	Unknown       uint32
}

type SteamEngine struct {
	Temperature uint32
}

type LockBot struct {
	TimePassed uint32
}

type SpiritStorageUnit struct {
	GhostJarCount uint32
}

type Shelf struct {
	TopLeftItemID     uint32
	TopRightItemID    uint32
	BottomLeftItemID  uint32
	BottomRightItemID uint32
}

type VipEntrance struct {
	AccessUIDs []uint32
	OwnerUID   uint32
	Unknown    uint8
}

type ChallengeTimer struct{}

type FishWallMount struct {
	Label  string
	ItemID uint32
	Lb     uint8
}

type Portrait struct {
	Label    string
	Unknown1 uint32
	Unknown2 uint32
	Unknown3 uint32
	Unknown4 uint32
	Face     uint32
	Hat      uint32
	Hair     uint32
	Unknown5 uint16
	Unknown6 uint16
}

type GuildWeatherMachine struct {
	Unknown uint32
	Gravity uint32
	Flags   uint8
}

type FossilPrepStation struct {
	Unknown uint32
}

type DnaExtractor struct{}

type Howler struct{}

type ChemsynthTank struct {
	CurrentChem uint32
	TargetChem  uint32
}

// StorageItem is one stack inside a storage block.
type StorageItem struct {
	ID     uint32
	Amount uint32
}

type StorageBlock struct {
	Items []StorageItem
}

// OvenIngredient is one item in a cooking oven with the tick it was added.
type OvenIngredient struct {
	ItemID    uint32
	TimeAdded uint32
}

type CookingOven struct {
	Ingredients      []OvenIngredient
	TemperatureLevel uint32
	Unknown1         uint32
	Unknown2         uint32
	Unknown3         uint32
}

type AudioRack struct {
	Note   string
	Volume uint32
}

type GeigerCharger struct {
	Unknown uint32
}

type AdventureBegins struct{}

type TombRobber struct{}

type BalloonOMatic struct {
	TotalRarity uint32
	TeamType    uint8
}

type TrainingPort struct {
	FishLb       uint32
	FishID       uint32
	FishTotalExp uint32
	FishLevel    uint32
	Unknown      uint32
	FishStatus   uint16
}

type ItemSucker struct {
	ItemIDToSuck uint32
	ItemAmount   uint32
	Limit        uint32
	Flags        uint16
}

// CyBotCommand is one programmed CyBot instruction slot.
type CyBotCommand struct {
	CommandID     uint32
	IsCommandUsed uint32
}

type CyBot struct {
	Commands  []CyBotCommand
	SyncTimer uint32
	Activated uint32
}

type GuildItem struct{}

type Growscan struct {
	Unknown uint8
}

type ContainmentFieldPowerNode struct {
	Unknown       []uint32
	GhostJarCount uint32
}

type SpiritBoard struct {
	Unknown1 uint32
	Unknown2 uint32
	Unknown3 uint32
}

type StormyCloud struct {
	StingDuration    uint32
	IsSolid          uint32
	NonSolidDuration uint32
}

type TemporaryPlatform struct {
	Unknown uint32
}

type SafeVault struct{}

type AngelicCountingCloud struct {
	IsRaffling uint32
	Unknown    uint16
	ASCIICode  uint8
}

type InfinityWeatherMachine struct {
	WeatherMachines []uint32
	IntervalMinutes uint32
}

type PineappleGuzzler struct{}

type KrakenGalacticBlock struct {
	Unknown      uint32
	PatternIndex uint8
	R            uint8
	G            uint8
	B            uint8
}

type FriendsEntrance struct {
	OwnerUserID uint32
	Unknown1    uint16
	Unknown2    uint16
}

type TesseractManipulator struct{}

func (Basic) Kind() Kind                     { return KindBasic }
func (Door) Kind() Kind                      { return KindDoor }
func (Sign) Kind() Kind                      { return KindSign }
func (Lock) Kind() Kind                      { return KindLock }
func (Seed) Kind() Kind                      { return KindSeed }
func (Mailbox) Kind() Kind                   { return KindMailbox }
func (Bulletin) Kind() Kind                  { return KindBulletin }
func (Dice) Kind() Kind                      { return KindDice }
func (ChemicalSource) Kind() Kind            { return KindChemicalSource }
func (AchievementBlock) Kind() Kind          { return KindAchievementBlock }
func (HearthMonitor) Kind() Kind             { return KindHearthMonitor }
func (DonationBox) Kind() Kind               { return KindDonationBox }
func (Mannequin) Kind() Kind                 { return KindMannequin }
func (BunnyEgg) Kind() Kind                  { return KindBunnyEgg }
func (GamePack) Kind() Kind                  { return KindGamePack }
func (GameGenerator) Kind() Kind             { return KindGameGenerator }
func (XenoniteCrystal) Kind() Kind           { return KindXenoniteCrystal }
func (PhoneBooth) Kind() Kind                { return KindPhoneBooth }
func (Crystal) Kind() Kind                   { return KindCrystal }
func (CrimeInProgress) Kind() Kind           { return KindCrimeInProgress }
func (DisplayBlock) Kind() Kind              { return KindDisplayBlock }
func (VendingMachine) Kind() Kind            { return KindVendingMachine }
func (FishTankPort) Kind() Kind              { return KindFishTankPort }
func (SolarCollector) Kind() Kind            { return KindSolarCollector }
func (Forge) Kind() Kind                     { return KindForge }
func (GivingTree) Kind() Kind                { return KindGivingTree }
func (SteamOrgan) Kind() Kind                { return KindSteamOrgan }
func (SilkWorm) Kind() Kind                  { return KindSilkWorm }
func (SewingMachine) Kind() Kind             { return KindSewingMachine }
func (CountryFlag) Kind() Kind               { return KindCountryFlag }
func (LobsterTrap) Kind() Kind               { return KindLobsterTrap }
func (PaintingEasel) Kind() Kind             { return KindPaintingEasel }
func (PetBattleCage) Kind() Kind             { return KindPetBattleCage }
func (PetTrainer) Kind() Kind                { return KindPetTrainer }
func (SteamEngine) Kind() Kind               { return KindSteamEngine }
func (LockBot) Kind() Kind                   { return KindLockBot }
func (WeatherMachine) Kind() Kind            { return KindWeatherMachine }
func (SpiritStorageUnit) Kind() Kind         { return KindSpiritStorageUnit }
func (DataBedrock) Kind() Kind               { return KindDataBedrock }
func (Shelf) Kind() Kind                     { return KindShelf }
func (VipEntrance) Kind() Kind               { return KindVipEntrance }
func (ChallengeTimer) Kind() Kind            { return KindChallengeTimer }
func (FishWallMount) Kind() Kind             { return KindFishWallMount }
func (Portrait) Kind() Kind                  { return KindPortrait }
func (GuildWeatherMachine) Kind() Kind       { return KindGuildWeatherMachine }
func (FossilPrepStation) Kind() Kind         { return KindFossilPrepStation }
func (DnaExtractor) Kind() Kind              { return KindDnaExtractor }
func (Howler) Kind() Kind                    { return KindHowler }
func (ChemsynthTank) Kind() Kind             { return KindChemsynthTank }
func (StorageBlock) Kind() Kind              { return KindStorageBlock }
func (CookingOven) Kind() Kind               { return KindCookingOven }
func (AudioRack) Kind() Kind                 { return KindAudioRack }
func (GeigerCharger) Kind() Kind             { return KindGeigerCharger }
func (AdventureBegins) Kind() Kind           { return KindAdventureBegins }
func (TombRobber) Kind() Kind                { return KindTombRobber }
func (BalloonOMatic) Kind() Kind             { return KindBalloonOMatic }
func (TrainingPort) Kind() Kind              { return KindTrainingPort }
func (ItemSucker) Kind() Kind                { return KindItemSucker }
func (CyBot) Kind() Kind                     { return KindCyBot }
func (GuildItem) Kind() Kind                 { return KindGuildItem }
func (Growscan) Kind() Kind                  { return KindGrowscan }
func (ContainmentFieldPowerNode) Kind() Kind { return KindContainmentFieldPowerNode }
func (SpiritBoard) Kind() Kind               { return KindSpiritBoard }
func (StormyCloud) Kind() Kind               { return KindStormyCloud }
func (TemporaryPlatform) Kind() Kind         { return KindTemporaryPlatform }
func (SafeVault) Kind() Kind                 { return KindSafeVault }
func (AngelicCountingCloud) Kind() Kind      { return KindAngelicCountingCloud }
func (InfinityWeatherMachine) Kind() Kind    { return KindInfinityWeatherMachine }
func (PineappleGuzzler) Kind() Kind          { return KindPineappleGuzzler }
func (KrakenGalacticBlock) Kind() Kind       { return KindKrakenGalacticBlock }
func (FriendsEntrance) Kind() Kind           { return KindFriendsEntrance }
func (TesseractManipulator) Kind() Kind      { return KindTesseractManipulator }
