package discord

import "github.com/bwmarrin/discordgo"

func subcmd(ic *discordgo.InteractionCreate) (*discordgo.ApplicationCommandInteractionDataOption, bool) {
	for _, o := range ic.ApplicationCommandData().Options {
		if o.Type == discordgo.ApplicationCommandOptionSubCommand {
			return o, true
		}
	}
	return nil, false
}

func optBool(sub *discordgo.ApplicationCommandInteractionDataOption, name string) (bool, bool) {
	for _, o := range sub.Options {
		if o.Name == name && o.Type == discordgo.ApplicationCommandOptionBoolean {
			return o.BoolValue(), true
		}
	}
	return false, false
}

func optInt(sub *discordgo.ApplicationCommandInteractionDataOption, name string) (int, bool) {
	for _, o := range sub.Options {
		if o.Name == name && o.Type == discordgo.ApplicationCommandOptionInteger {
			return int(o.IntValue()), true
		}
	}
	return 0, false
}

// optChannel and optUser return raw snowflake ids; resolution against the
// session state is the caller's problem.
func optChannel(sub *discordgo.ApplicationCommandInteractionDataOption, name string) (string, bool) {
	for _, o := range sub.Options {
		if o.Name == name && o.Type == discordgo.ApplicationCommandOptionChannel {
			return o.Value.(string), true
		}
	}
	return "", false
}

func optUser(sub *discordgo.ApplicationCommandInteractionDataOption, name string) (string, bool) {
	for _, o := range sub.Options {
		if o.Name == name && o.Type == discordgo.ApplicationCommandOptionUser {
			return o.Value.(string), true
		}
	}
	return "", false
}

func isAdmin(ic *discordgo.InteractionCreate) bool {
	if ic.Member == nil {
		return false
	}
	return ic.Member.Permissions&discordgo.PermissionManageServer != 0
}
