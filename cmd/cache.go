package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aguilerap-jc/thecatmanor/config"
)

var cacheClearCmd = &cobra.Command{
	Use:   "cache:clear",
	Short: "Drop the mirrored catalog cache from Redis",
	Long: "Running servers cache Shopify catalog data in-process and mirror it to " +
		"Redis when REDIS_ADDR is set. This clears the mirror so the next fetch " +
		"goes back to the Storefront API.",
	Run: func(cmd *cobra.Command, args []string) {
		config.InitRedis()
		if config.RedisClient == nil {
			fmt.Println("REDIS_ADDR not set; in-process caches expire on their own")
			return
		}
		ctx := config.RedisCtx()
		keys, err := config.RedisClient.Keys(ctx, "catmanor:cache:*").Result()
		if err != nil {
			fmt.Fprintf(os.Stderr, "listing cache keys: %v\n", err)
			os.Exit(1)
		}
		if len(keys) > 0 {
			if err := config.RedisClient.Del(ctx, keys...).Err(); err != nil {
				fmt.Fprintf(os.Stderr, "deleting cache keys: %v\n", err)
				os.Exit(1)
			}
		}
		fmt.Printf("cleared %d cached entries\n", len(keys))
	},
}

func init() {
	rootCmd.AddCommand(cacheClearCmd)
}
