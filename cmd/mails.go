package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/qpost/go-qpost-server/global"
	"github.com/qpost/go-qpost-server/repository"
)

func storeClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     global.Conf.Redis.Host + ":" + strconv.Itoa(global.Conf.Redis.Port),
		Username: global.Conf.Redis.Username,
		Password: global.Conf.Redis.Password,
		DB:       global.Conf.Redis.DB,
	})
}

var mailsCmd = &cobra.Command{
	Use:   "mails",
	Short: "Inspect or clear the persisted mail collection",
}

var mailsDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the mail collection as JSON",
	Run: func(cmd *cobra.Command, args []string) {
		client := storeClient()
		defer client.Close()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		repo := repository.NewRedisMailRepository(client)
		mails, err := repo.LoadAll(ctx)
		check(err)

		out, err := json.MarshalIndent(mails, "", "  ")
		check(err)
		fmt.Println(string(out))
	},
}

var mailsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the whole mail collection blob",
	Run: func(cmd *cobra.Command, args []string) {
		client := storeClient()
		defer client.Close()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		check(client.Del(ctx, repository.MailCollectionKey).Err())
		fmt.Println("mail collection cleared")
	},
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List the configured user directory",
	Run: func(cmd *cobra.Command, args []string) {
		for _, u := range global.Conf.Users {
			fmt.Printf("%s\t%s\n", u.Username, u.Name)
		}
	},
}

func init() {
	mailsCmd.AddCommand(mailsDumpCmd)
	mailsCmd.AddCommand(mailsClearCmd)
	rootCmd.AddCommand(mailsCmd)
	rootCmd.AddCommand(usersCmd)
}
