package sqlinline

// QCountUsers and QListUsers share one Conditions clause; the caller renders
// the %s slot with Conditions.Where and, for QListUsers, the limit/offset
// placeholders with Conditions.Next.
const QCountUsers = `--sql 2babccf4-4316-4a1c-a795-3fe4df65e240
select count(*)
from users u
%s;
`

const QListUsers = `--sql 2872e182-999f-496a-9a93-24004e22d449
select
  u.id,
  u.username,
  u.email,
  u.role,
  u.is_active,
  u.is_vip,
  u.balance,
  u.subscription_plan,
  u.subscription_end,
  u.created_at,
  u.last_login_at,
  coalesce(g.preview_count, 0) as preview_count,
  coalesce(g.download_count, 0) as download_count,
  coalesce(l.login_count, 0) as login_count
from users u
left join (
  select user_id,
         count(*) filter (where kind = 'preview') as preview_count,
         count(*) filter (where kind = 'paid') as download_count
  from generations
  group by user_id
) g on g.user_id = u.id
left join (
  select user_id, count(*) as login_count
  from login_logs
  where success
  group by user_id
) l on l.user_id = u.id
%s
order by u.created_at desc
limit $%d offset $%d;
`

const QSelectUserByID = `--sql 46288fbe-cad9-4a96-b474-2faa8e331396
select
  id,
  username,
  email,
  role,
  is_active,
  is_vip,
  balance,
  subscription_plan,
  subscription_end,
  created_at,
  last_login_at
from users
where id = $1::uuid
limit 1;
`

const QRecentGenerationsByUser = `--sql 63884365-9fa1-4f3c-be6e-6686fa373f2b
select
  id,
  kind,
  status,
  template_name,
  amount,
  duration_ms,
  created_at,
  completed_at
from generations
where user_id = $1::uuid
  and kind = $2::text
order by created_at desc
limit $3::int;
`

const QRecentLoginsByUser = `--sql 8fbacf82-6a30-4b74-a9e4-e49f5898fb12
select
  id,
  success,
  ip,
  user_agent,
  session_seconds,
  created_at,
  logged_out_at
from login_logs
where user_id = $1::uuid
order by created_at desc
limit $2::int;
`
