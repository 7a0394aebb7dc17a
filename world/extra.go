package world

import (
	"github.com/CLOEI/gtworld-r/world/internal/binary"
)

// decodeExtra reads the variant payload selected by the discriminant byte.
// Field order and width are part of the wire contract. Unmapped
// discriminants fall back to Basic without consuming any payload bytes;
// that is the format's forward-compatibility policy, not an error. If a
// real unmapped tag ever carries a nonzero payload the cursor will
// desynchronize for the rest of the record -- a latent defect inherited
// from the format, not resolved here.
func (w *World) decodeExtra(r *binary.Reader, kind uint8, t *Tile) (TileType, error) {
	switch Kind(kind) {
	case KindDoor:
		text, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		unknown, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		return Door{Text: text, Unknown: unknown}, nil

	case KindSign:
		text, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		if _, err := r.ReadU32(); err != nil {
			return nil, err
		}
		return Sign{Text: text}, nil

	case KindLock:
		var v Lock
		var err error
		if v.Settings, err = r.ReadU8(); err != nil {
			return nil, err
		}
		if v.OwnerUID, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if v.AccessCount, err = r.ReadU32(); err != nil {
			return nil, err
		}
		v.AccessUIDs = make([]uint32, 0, allocHint(v.AccessCount, r, 4))
		for i := uint32(0); i < v.AccessCount; i++ {
			uid, err := r.ReadU32()
			if err != nil {
				return nil, err
			}
			v.AccessUIDs = append(v.AccessUIDs, uid)
		}
		if v.MinimumLevel, err = r.ReadU8(); err != nil {
			return nil, err
		}
		if err := r.Skip(7); err != nil {
			return nil, err
		}
		// Guild locks trail 16 extra bytes no other lock item has.
		if t.ForegroundItemID == guildLockItemID {
			if err := r.Skip(16); err != nil {
				return nil, err
			}
		}
		return v, nil

	case KindSeed:
		timePassed, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		itemOnTree, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		return Seed{
			TimePassed:     timePassed,
			ItemOnTree:     itemOnTree,
			ReadyToHarvest: w.growTimeReached(t.ForegroundItemID, timePassed),
			DecodedAt:      w.now(),
		}, nil

	case KindMailbox:
		s1, s2, s3, b, err := readThreeStringsByte(r)
		if err != nil {
			return nil, err
		}
		return Mailbox{Unknown1: s1, Unknown2: s2, Unknown3: s3, Unknown4: b}, nil

	case KindBulletin:
		s1, s2, s3, b, err := readThreeStringsByte(r)
		if err != nil {
			return nil, err
		}
		return Bulletin{Unknown1: s1, Unknown2: s2, Unknown3: s3, Unknown4: b}, nil

	case KindDice:
		symbol, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		return Dice{Symbol: symbol}, nil

	case KindChemicalSource:
		timePassed, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		return ChemicalSource{
			TimePassed:     timePassed,
			ReadyToHarvest: w.growTimeReached(t.ForegroundItemID, timePassed),
			DecodedAt:      w.now(),
		}, nil

	case KindAchievementBlock:
		unknown, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		tileType, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		return AchievementBlock{Unknown: unknown, TileType: tileType}, nil

	case KindHearthMonitor:
		unknown, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		name, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		return HearthMonitor{Unknown: unknown, PlayerName: name}, nil

	case KindDonationBox:
		s1, s2, s3, b, err := readThreeStringsByte(r)
		if err != nil {
			return nil, err
		}
		return DonationBox{Unknown1: s1, Unknown2: s2, Unknown3: s3, Unknown4: b}, nil

	case KindMannequin:
		var v Mannequin
		var err error
		if v.Text, err = r.ReadString(); err != nil {
			return nil, err
		}
		if v.Unknown, err = r.ReadU8(); err != nil {
			return nil, err
		}
		if v.Clothing1, err = r.ReadU32(); err != nil {
			return nil, err
		}
		for _, p := range []*uint16{
			&v.Clothing2, &v.Clothing3, &v.Clothing4, &v.Clothing5,
			&v.Clothing6, &v.Clothing7, &v.Clothing8, &v.Clothing9,
			&v.Clothing10,
		} {
			if *p, err = r.ReadU16(); err != nil {
				return nil, err
			}
		}
		return v, nil

	case KindBunnyEgg:
		placed, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		return BunnyEgg{EggsPlaced: placed}, nil

	case KindGamePack:
		team, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		return GamePack{Team: team}, nil

	case KindGameGenerator:
		return GameGenerator{}, nil

	case KindXenoniteCrystal:
		u1, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		u2, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		return XenoniteCrystal{Unknown1: u1, Unknown2: u2}, nil

	case KindPhoneBooth:
		var v PhoneBooth
		var err error
		for _, p := range []*uint16{
			&v.Clothing1, &v.Clothing2, &v.Clothing3, &v.Clothing4,
			&v.Clothing5, &v.Clothing6, &v.Clothing7, &v.Clothing8,
			&v.Clothing9,
		} {
			if *p, err = r.ReadU16(); err != nil {
				return nil, err
			}
		}
		return v, nil

	case KindCrystal:
		s, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		return Crystal{Unknown: s}, nil

	case KindCrimeInProgress:
		s, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		u2, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		u3, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		return CrimeInProgress{Unknown1: s, Unknown2: u2, Unknown3: u3}, nil

	case KindDisplayBlock:
		id, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		return DisplayBlock{ItemID: id}, nil

	case KindVendingMachine:
		id, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		price, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		return VendingMachine{ItemID: id, Price: price}, nil

	case KindFishTankPort:
		flags, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		// The wire count is per-field, two fields per fish.
		fishCount, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		fishes := make([]FishInfo, 0, allocHint(fishCount/2, r, 8))
		for i := uint32(0); i < fishCount/2; i++ {
			var f FishInfo
			if f.FishItemID, err = r.ReadU32(); err != nil {
				return nil, err
			}
			if f.Lbs, err = r.ReadU32(); err != nil {
				return nil, err
			}
			fishes = append(fishes, f)
		}
		return FishTankPort{Flags: flags, Fishes: fishes}, nil

	case KindSolarCollector:
		b, err := r.ReadBytes(5)
		if err != nil {
			return nil, err
		}
		var v SolarCollector
		copy(v.Unknown[:], b)
		return v, nil

	case KindForge:
		temp, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		return Forge{Temperature: temp}, nil

	case KindGivingTree:
		u1, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		u2, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		return GivingTree{Unknown1: u1, Unknown2: u2}, nil

	case KindSteamOrgan:
		instrument, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		note, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		return SteamOrgan{InstrumentType: instrument, Note: note}, nil

	case KindSilkWorm:
		var v SilkWorm
		var err error
		if v.Type, err = r.ReadU8(); err != nil {
			return nil, err
		}
		if v.Name, err = r.ReadString(); err != nil {
			return nil, err
		}
		if v.Age, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if v.Unknown1, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if v.Unknown2, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if v.CanBeFed, err = r.ReadU8(); err != nil {
			return nil, err
		}
		color, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		v.Color = SilkWormColor{
			A: uint8(color >> 24),
			R: uint8(color >> 16),
			G: uint8(color >> 8),
			B: uint8(color),
		}
		if v.SickDuration, err = r.ReadU32(); err != nil {
			return nil, err
		}
		return v, nil

	case KindSewingMachine:
		n, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		ids := make([]uint32, 0, n)
		for i := uint16(0); i < n; i++ {
			id, err := r.ReadU32()
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
		return SewingMachine{BoltIDs: ids}, nil

	case KindCountryFlag:
		country, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		return CountryFlag{Country: country}, nil

	case KindLobsterTrap:
		return LobsterTrap{}, nil

	case KindPaintingEasel:
		id, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		label, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		return PaintingEasel{ItemID: id, Label: label}, nil

	case KindPetBattleCage:
		var v PetBattleCage
		var err error
		if v.Label, err = r.ReadString(); err != nil {
			return nil, err
		}
		if v.BasePet, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if v.CombinedPet1, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if v.CombinedPet2, err = r.ReadU32(); err != nil {
			return nil, err
		}
		return v, nil

	case KindPetTrainer:
		var v PetTrainer
		var err error
		if v.Name, err = r.ReadString(); err != nil {
			return nil, err
		}
		if v.PetTotalCount, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if v.Unknown, err = r.ReadU32(); err != nil {
			return nil, err
		}
		v.PetIDs = make([]uint32, 0, allocHint(v.PetTotalCount, r, 4))
		for i := uint32(0); i < v.PetTotalCount; i++ {
			id, err := r.ReadU32()
			if err != nil {
				return nil, err
			}
			v.PetIDs = append(v.PetIDs, id)
		}
		return v, nil

	case KindSteamEngine:
		temp, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		return SteamEngine{Temperature: temp}, nil

	case KindLockBot:
		timePassed, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		return LockBot{TimePassed: timePassed}, nil

	case KindWeatherMachine:
		settings, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		return WeatherMachine{Settings: settings}, nil

	case KindSpiritStorageUnit:
		jars, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		return SpiritStorageUnit{GhostJarCount: jars}, nil

	case KindDataBedrock:
		if err := r.Skip(21); err != nil {
			return nil, err
		}
		return DataBedrock{}, nil

	case KindShelf:
		var v Shelf
		var err error
		for _, p := range []*uint32{
			&v.TopLeftItemID, &v.TopRightItemID,
			&v.BottomLeftItemID, &v.BottomRightItemID,
		} {
			if *p, err = r.ReadU32(); err != nil {
				return nil, err
			}
		}
		return v, nil

	case KindVipEntrance:
		var v VipEntrance
		var err error
		if v.Unknown, err = r.ReadU8(); err != nil {
			return nil, err
		}
		if v.OwnerUID, err = r.ReadU32(); err != nil {
			return nil, err
		}
		count, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		v.AccessUIDs = make([]uint32, 0, allocHint(count, r, 4))
		for i := uint32(0); i < count; i++ {
			uid, err := r.ReadU32()
			if err != nil {
				return nil, err
			}
			v.AccessUIDs = append(v.AccessUIDs, uid)
		}
		return v, nil

	case KindChallengeTimer:
		return ChallengeTimer{}, nil

	case KindFishWallMount:
		label, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		id, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		lb, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		return FishWallMount{Label: label, ItemID: id, Lb: lb}, nil

	case KindPortrait:
		var v Portrait
		var err error
		if v.Label, err = r.ReadString(); err != nil {
			return nil, err
		}
		for _, p := range []*uint32{
			&v.Unknown1, &v.Unknown2, &v.Unknown3, &v.Unknown4,
			&v.Face, &v.Hat, &v.Hair,
		} {
			if *p, err = r.ReadU32(); err != nil {
				return nil, err
			}
		}
		if v.Unknown5, err = r.ReadU16(); err != nil {
			return nil, err
		}
		if v.Unknown6, err = r.ReadU16(); err != nil {
			return nil, err
		}
		return v, nil

	case KindGuildWeatherMachine:
		unknown, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		gravity, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		flags, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		return GuildWeatherMachine{Unknown: unknown, Gravity: gravity, Flags: flags}, nil

	case KindFossilPrepStation:
		unknown, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		return FossilPrepStation{Unknown: unknown}, nil

	case KindDnaExtractor:
		return DnaExtractor{}, nil

	case KindHowler:
		return Howler{}, nil

	case KindChemsynthTank:
		current, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		target, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		return ChemsynthTank{CurrentChem: current, TargetChem: target}, nil

	case KindStorageBlock:
		// Length is in bytes; each record is 13 bytes with two interior
		// reserved spans.
		byteLen, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		items := make([]StorageItem, 0, byteLen/13)
		for i := uint16(0); i < byteLen/13; i++ {
			if err := r.Skip(3); err != nil {
				return nil, err
			}
			var it StorageItem
			if it.ID, err = r.ReadU32(); err != nil {
				return nil, err
			}
			if err := r.Skip(2); err != nil {
				return nil, err
			}
			if it.Amount, err = r.ReadU32(); err != nil {
				return nil, err
			}
			items = append(items, it)
		}
		return StorageBlock{Items: items}, nil

	case KindCookingOven:
		var v CookingOven
		var err error
		if v.TemperatureLevel, err = r.ReadU32(); err != nil {
			return nil, err
		}
		count, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		v.Ingredients = make([]OvenIngredient, 0, allocHint(count, r, 8))
		for i := uint32(0); i < count; i++ {
			var ing OvenIngredient
			if ing.ItemID, err = r.ReadU32(); err != nil {
				return nil, err
			}
			if ing.TimeAdded, err = r.ReadU32(); err != nil {
				return nil, err
			}
			v.Ingredients = append(v.Ingredients, ing)
		}
		if v.Unknown1, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if v.Unknown2, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if v.Unknown3, err = r.ReadU32(); err != nil {
			return nil, err
		}
		return v, nil

	case KindAudioRack:
		note, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		volume, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		return AudioRack{Note: note, Volume: volume}, nil

	case KindGeigerCharger:
		unknown, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		return GeigerCharger{Unknown: unknown}, nil

	case KindAdventureBegins:
		return AdventureBegins{}, nil

	case KindTombRobber:
		return TombRobber{}, nil

	case KindBalloonOMatic:
		rarity, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		team, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		return BalloonOMatic{TotalRarity: rarity, TeamType: team}, nil

	case KindTrainingPort:
		var v TrainingPort
		var err error
		if v.FishLb, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if v.FishStatus, err = r.ReadU16(); err != nil {
			return nil, err
		}
		if v.FishID, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if v.FishTotalExp, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if v.FishLevel, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if v.Unknown, err = r.ReadU32(); err != nil {
			return nil, err
		}
		return v, nil

	case KindItemSucker:
		var v ItemSucker
		var err error
		if v.ItemIDToSuck, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if v.ItemAmount, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if v.Flags, err = r.ReadU16(); err != nil {
			return nil, err
		}
		if v.Limit, err = r.ReadU32(); err != nil {
			return nil, err
		}
		return v, nil

	case KindCyBot:
		var v CyBot
		var err error
		if v.SyncTimer, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if v.Activated, err = r.ReadU32(); err != nil {
			return nil, err
		}
		count, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		v.Commands = make([]CyBotCommand, 0, allocHint(count, r, 15))
		for i := uint32(0); i < count; i++ {
			var c CyBotCommand
			if c.CommandID, err = r.ReadU32(); err != nil {
				return nil, err
			}
			if c.IsCommandUsed, err = r.ReadU32(); err != nil {
				return nil, err
			}
			if err := r.Skip(7); err != nil {
				return nil, err
			}
			v.Commands = append(v.Commands, c)
		}
		return v, nil

	case KindGuildItem:
		if err := r.Skip(17); err != nil {
			return nil, err
		}
		return GuildItem{}, nil

	case KindGrowscan:
		unknown, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		return Growscan{Unknown: unknown}, nil

	case KindContainmentFieldPowerNode:
		jars, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		count, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		values := make([]uint32, 0, allocHint(count, r, 4))
		for i := uint32(0); i < count; i++ {
			v, err := r.ReadU32()
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		return ContainmentFieldPowerNode{GhostJarCount: jars, Unknown: values}, nil

	case KindSpiritBoard:
		var v SpiritBoard
		var err error
		if v.Unknown1, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if v.Unknown2, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if v.Unknown3, err = r.ReadU32(); err != nil {
			return nil, err
		}
		return v, nil

	case KindStormyCloud:
		var v StormyCloud
		var err error
		if v.StingDuration, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if v.IsSolid, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if v.NonSolidDuration, err = r.ReadU32(); err != nil {
			return nil, err
		}
		return v, nil

	case KindTemporaryPlatform:
		unknown, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		return TemporaryPlatform{Unknown: unknown}, nil

	case KindSafeVault:
		return SafeVault{}, nil

	case KindAngelicCountingCloud:
		raffling, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		unknown, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		ascii, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		return AngelicCountingCloud{IsRaffling: raffling, Unknown: unknown, ASCIICode: ascii}, nil

	case KindInfinityWeatherMachine:
		interval, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		count, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		machines := make([]uint32, 0, allocHint(count, r, 4))
		for i := uint32(0); i < count; i++ {
			m, err := r.ReadU32()
			if err != nil {
				return nil, err
			}
			machines = append(machines, m)
		}
		return InfinityWeatherMachine{IntervalMinutes: interval, WeatherMachines: machines}, nil

	case KindPineappleGuzzler:
		return PineappleGuzzler{}, nil

	case KindKrakenGalacticBlock:
		var v KrakenGalacticBlock
		var err error
		if v.PatternIndex, err = r.ReadU8(); err != nil {
			return nil, err
		}
		if v.Unknown, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if v.R, err = r.ReadU8(); err != nil {
			return nil, err
		}
		if v.G, err = r.ReadU8(); err != nil {
			return nil, err
		}
		if v.B, err = r.ReadU8(); err != nil {
			return nil, err
		}
		return v, nil

	case KindFriendsEntrance:
		owner, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		u1, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		u2, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		return FriendsEntrance{OwnerUserID: owner, Unknown1: u1, Unknown2: u2}, nil

	case KindTesseractManipulator:
		return TesseractManipulator{}, nil

	default:
		return Basic{}, nil
	}
}

// growTimeReached compares the decoded time-passed counter against the
// foreground item's catalog grow time. Equality counts as ready. An item
// missing from the catalog reports not ready; readiness can still be
// re-derived later through Tile.Harvestable.
func (w *World) growTimeReached(fg uint16, timePassed uint32) bool {
	item, ok := w.cat.Get(uint32(fg))
	if !ok {
		return false
	}
	return timePassed >= item.GrowTime
}

// readThreeStringsByte reads the shared Mailbox/Bulletin/DonationBox shape:
// three length-prefixed strings followed by one byte.
func readThreeStringsByte(r *binary.Reader) (string, string, string, uint8, error) {
	s1, err := r.ReadString()
	if err != nil {
		return "", "", "", 0, err
	}
	s2, err := r.ReadString()
	if err != nil {
		return "", "", "", 0, err
	}
	s3, err := r.ReadString()
	if err != nil {
		return "", "", "", 0, err
	}
	b, err := r.ReadU8()
	if err != nil {
		return "", "", "", 0, err
	}
	return s1, s2, s3, b, nil
}
