package discord

import "github.com/bwmarrin/discordgo"

var Commands = []*discordgo.ApplicationCommand{
	{
		Name:        "ping",
		Description: "Check that the bot is alive",
	},
	{
		Name:        "boar",
		Description: "Collect boars",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "daily", Description: "Claim your daily boar"},
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "collection", Description: "View your collection"},
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "top", Description: "View the leaderboard"},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "notifications",
				Description: "Turn daily notification DMs on or off",
				Options: []*discordgo.ApplicationCommandOption{{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "enabled",
					Description: "Receive daily notifications",
					Required:    true,
				}},
			},
		},
	},
	{
		Name:        "boar-manage",
		Description: "Server management (admins)",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "setup", Description: "Start the setup flow for this server"},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "channel",
				Description: "Add a boar channel to the setup",
				Options: []*discordgo.ApplicationCommandOption{{
					Type:        discordgo.ApplicationCommandOptionChannel,
					Name:        "channel",
					Description: "Channel boars may use",
					Required:    true,
				}},
			},
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "finish", Description: "Finish the setup flow"},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "ban",
				Description: "Ban a user from claiming boars",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionUser, Name: "user", Description: "User to ban", Required: true},
					{Type: discordgo.ApplicationCommandOptionInteger, Name: "days", Description: "Ban length in days (omit for permanent)"},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "unban",
				Description: "Lift a boar ban",
				Options: []*discordgo.ApplicationCommandOption{{
					Type: discordgo.ApplicationCommandOptionUser, Name: "user", Description: "User to unban", Required: true,
				}},
			},
		},
	},
}
