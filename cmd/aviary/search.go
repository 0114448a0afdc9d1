package main

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aviary-tools/aviary"
	"github.com/aviary-tools/aviary/records"
)

var flagExpression string

var searchTweetsCmd = &cobra.Command{
	Use:   "search-tweets",
	Short: "Search tweet text with a regular expression",
	RunE:  runSearchTweets,
}

var searchDMsCmd = &cobra.Command{
	Use:   "search-dms",
	Short: "Search direct-message text with a regular expression",
	RunE:  runSearchDMs,
}

func init() {
	for _, cmd := range []*cobra.Command{searchTweetsCmd, searchDMsCmd} {
		cmd.Flags().StringVar(&flagExpression, "expression", "", "regular expression to match (required)")
		_ = cmd.MarkFlagRequired("expression")
	}
}

func runSearchTweets(cmd *cobra.Command, args []string) error {
	re, err := regexp.Compile(flagExpression)
	if err != nil {
		return fmt.Errorf("invalid --expression: %w", err)
	}

	a, err := aviary.Open(flagArchive)
	if err != nil {
		return err
	}
	defer a.Close()

	tweets, err := a.Tweets()
	if err != nil {
		return err
	}
	logger.Debug("decoded tweets", zap.Int("count", len(tweets)))

	for i, obj := range tweets {
		tweet := obj.Tweet
		if !re.MatchString(tweet.FullText) {
			continue
		}
		fmt.Printf("Index: %d\n", i)
		fmt.Printf("Created at: %s\n", tweet.CreatedAt)
		fmt.Printf("vvv Content\n%s\n^^^ Content\n", tweet.FullText)
	}
	return nil
}

func runSearchDMs(cmd *cobra.Command, args []string) error {
	re, err := regexp.Compile(flagExpression)
	if err != nil {
		return fmt.Errorf("invalid --expression: %w", err)
	}

	a, err := aviary.Open(flagArchive)
	if err != nil {
		return err
	}
	defer a.Close()

	conversations, err := a.DirectMessages()
	if err != nil {
		return err
	}
	logger.Debug("decoded conversations", zap.Int("count", len(conversations)))

	for _, obj := range conversations {
		conversation := obj.DMConversation
		for i, msg := range conversation.Messages {
			message := msg.MessageCreate
			if !re.MatchString(message.Text) {
				continue
			}
			fmt.Printf("Conversation ID: %s\n", conversation.ConversationID)
			fmt.Printf("Message index: %d\n", i)
			fmt.Printf("Created at: %s\n", message.CreatedAt)
			fmt.Printf("vvv Content\n%s\n^^^ Content\n", message.Text)
		}
	}

	groups, err := a.GroupDirectMessages()
	if err != nil {
		// Older exports have no group conversations file.
		logger.Debug("skipping group conversations", zap.Error(err))
		return nil
	}
	for _, obj := range groups {
		conversation := obj.DMConversation
		for i, ev := range conversation.Messages {
			message, ok := ev.(records.GroupMessageCreate)
			if !ok || !re.MatchString(message.Text) {
				continue
			}
			fmt.Printf("Group conversation ID: %s\n", conversation.ConversationID)
			fmt.Printf("Event index: %d (%s)\n", i, ev.Variant())
			fmt.Printf("Created at: %s\n", message.CreatedAt)
			fmt.Printf("vvv Content\n%s\n^^^ Content\n", message.Text)
		}
	}
	return nil
}
