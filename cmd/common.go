// Package cmd implements the command-line interface for utune.
package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/utune-cli/utune/icon"
	"github.com/utune-cli/utune/internal/cache"
	"github.com/utune-cli/utune/key"
	"github.com/utune-cli/utune/provider"
	"github.com/utune-cli/utune/quality"
	"github.com/utune-cli/utune/query"
	"github.com/utune-cli/utune/source"
	"github.com/utune-cli/utune/util"
)

// activeSource resolves the configured provider into a live source.
func activeSource() source.Source {
	p, ok := provider.Default()
	if !ok {
		handleErr(fmt.Errorf(
			"unknown source %q, type \"utune sources list\" to show available providers",
			viper.GetString(key.DefaultSource),
		))
	}

	src, err := p.CreateSource()
	handleErr(err)

	return src
}

// qualityRequest assembles the selection request from the current configuration.
func qualityRequest() quality.Request {
	request := quality.Request{
		Profile:     quality.Get(viper.GetString(key.QualityProfile)),
		PreferVideo: viper.GetBool(key.QualityPreferVideo),
	}

	if override := viper.GetString(key.QualityVideoProfile); override != "" {
		request.VideoQualityOverride = mo.Some(override)
	}
	if container := viper.GetString(key.QualityContainer); container != "" {
		request.PreferredContainer = mo.Some(container)
	}

	return request
}

// registerSearchFlags attaches the shared discovery flags used by the search,
// stream and download commands.
func registerSearchFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("artist", "a", "", "Bias results towards one artist or channel")
	cmd.Flags().StringP("keywords", "k", "", "Extra keywords merged into the search terms")
	cmd.Flags().IntP("limit", "l", 0, "Number of results to request (0 uses the configured default)")
	cmd.Flags().StringP("order", "o", "", "Search ordering hint: relevance, date, longest, shortest")
	cmd.Flags().Int("min-duration", 0, "Minimum track length in seconds")
	cmd.Flags().Int("max-duration", 0, "Maximum track length in seconds")
	cmd.Flags().Int64("min-views", 0, "Minimum view count")
	cmd.Flags().Int64("max-views", 0, "Maximum view count")
	cmd.Flags().String("uploaded-after", "", "Only tracks uploaded after this date (YYYY-MM-DD)")
	cmd.Flags().String("uploaded-before", "", "Only tracks uploaded before this date (YYYY-MM-DD)")
	cmd.Flags().Bool("live", false, "Allow live broadcasts in the results")
	cmd.Flags().Bool("nsfw", false, "Allow age-restricted entries in the results")
}

// completionQueries suggests previously remembered searches.
func completionQueries(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
}

// searchRequestFromFlags builds the discovery request from positional query
// terms and the shared search flags.
func searchRequestFromFlags(cmd *cobra.Command, args []string) source.SearchRequest {
	filters := &source.Filters{
		Keywords:       lo.Must(cmd.Flags().GetString("keywords")),
		RequireNonLive: viper.GetBool(key.SearchRequireNonLive) && !lo.Must(cmd.Flags().GetBool("live")),
		SafeForWork:    viper.GetBool(key.SearchSafeForWork) && !lo.Must(cmd.Flags().GetBool("nsfw")),
	}

	if v := lo.Must(cmd.Flags().GetInt("min-duration")); v > 0 {
		filters.MinDuration = mo.Some(v)
	}
	if v := lo.Must(cmd.Flags().GetInt("max-duration")); v > 0 {
		filters.MaxDuration = mo.Some(v)
	}
	if v := lo.Must(cmd.Flags().GetInt64("min-views")); v > 0 {
		filters.MinViews = mo.Some(v)
	}
	if v := lo.Must(cmd.Flags().GetInt64("max-views")); v > 0 {
		filters.MaxViews = mo.Some(v)
	}
	if raw := lo.Must(cmd.Flags().GetString("uploaded-after")); raw != "" {
		filters.UploadAfter = mo.Some(parseDate(raw))
	}
	if raw := lo.Must(cmd.Flags().GetString("uploaded-before")); raw != "" {
		filters.UploadBefore = mo.Some(parseDate(raw))
	}

	limit := lo.Must(cmd.Flags().GetInt("limit"))
	if limit <= 0 {
		limit = viper.GetInt(key.SearchMaxResults)
	}

	order := lo.Must(cmd.Flags().GetString("order"))
	if order == "" {
		order = viper.GetString(key.SearchOrder)
	}

	return source.SearchRequest{
		Genre:      strings.Join(args, " "),
		Artist:     lo.Must(cmd.Flags().GetString("artist")),
		Filters:    filters,
		MaxResults: limit,
		Order:      order,
	}
}

func parseDate(raw string) time.Time {
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		handleErr(fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw))
	}
	return parsed
}

// runSearch executes the discovery query with a transparent result cache and
// remembers the query text for future suggestions.
func runSearch(src source.Source, request source.SearchRequest) []*source.Track {
	queryText := strings.TrimSpace(strings.Join([]string{request.Genre, request.Artist}, " "))
	cacheKey := cache.GenerateKey(fmt.Sprintf("%s|%s|%d", queryText, request.Order, request.MaxResults), src.ID())

	var tracks []*source.Track
	if cache.Read(cacheKey, &tracks) && len(tracks) > 0 {
		tracks = lo.Filter(tracks, func(t *source.Track, _ int) bool {
			return request.Filters == nil || request.Filters.Matches(t)
		})
		if len(tracks) > 0 {
			return tracks
		}
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Searching for %s...", icon.Get(icon.Search), queryText))
	tracks, err := src.Search(request)
	erase()
	handleErr(err)

	if len(tracks) > 0 {
		_ = cache.Write(cacheKey, tracks)
	}
	_ = query.Remember(queryText, 1)

	return tracks
}

// formatDuration renders seconds as m:ss or h:mm:ss.
func formatDuration(seconds int) string {
	d := time.Duration(seconds) * time.Second
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := seconds % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
