package snapshot

import (
	"reflect"

	"github.com/CLOEI/gtworld-r/world"
)

// kindTypes maps every tile kind onto its concrete type so import can
// round-trip the closed variant set.
var kindTypes = func() map[world.Kind]reflect.Type {
	variants := []world.TileType{
		world.Basic{},
		world.Door{},
		world.Sign{},
		world.Lock{},
		world.Seed{},
		world.Mailbox{},
		world.Bulletin{},
		world.Dice{},
		world.ChemicalSource{},
		world.AchievementBlock{},
		world.HearthMonitor{},
		world.DonationBox{},
		world.Mannequin{},
		world.BunnyEgg{},
		world.GamePack{},
		world.GameGenerator{},
		world.XenoniteCrystal{},
		world.PhoneBooth{},
		world.Crystal{},
		world.CrimeInProgress{},
		world.DisplayBlock{},
		world.VendingMachine{},
		world.FishTankPort{},
		world.SolarCollector{},
		world.Forge{},
		world.GivingTree{},
		world.SteamOrgan{},
		world.SilkWorm{},
		world.SewingMachine{},
		world.CountryFlag{},
		world.LobsterTrap{},
		world.PaintingEasel{},
		world.PetBattleCage{},
		world.PetTrainer{},
		world.SteamEngine{},
		world.LockBot{},
		world.WeatherMachine{},
		world.SpiritStorageUnit{},
		world.DataBedrock{},
		world.Shelf{},
		world.VipEntrance{},
		world.ChallengeTimer{},
		world.FishWallMount{},
		world.Portrait{},
		world.GuildWeatherMachine{},
		world.FossilPrepStation{},
		world.DnaExtractor{},
		world.Howler{},
		world.ChemsynthTank{},
		world.StorageBlock{},
		world.CookingOven{},
		world.AudioRack{},
		world.GeigerCharger{},
		world.AdventureBegins{},
		world.TombRobber{},
		world.BalloonOMatic{},
		world.TrainingPort{},
		world.ItemSucker{},
		world.CyBot{},
		world.GuildItem{},
		world.Growscan{},
		world.ContainmentFieldPowerNode{},
		world.SpiritBoard{},
		world.StormyCloud{},
		world.TemporaryPlatform{},
		world.SafeVault{},
		world.AngelicCountingCloud{},
		world.InfinityWeatherMachine{},
		world.PineappleGuzzler{},
		world.KrakenGalacticBlock{},
		world.FriendsEntrance{},
		world.TesseractManipulator{},
	}
	m := make(map[world.Kind]reflect.Type, len(variants))
	for _, v := range variants {
		m[v.Kind()] = reflect.TypeOf(v)
	}
	return m
}()
